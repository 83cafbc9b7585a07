package main

import (
	"context"
	"log"
	"os"

	"github.com/ebalashova/healthapp-cli/internal/buildinfo"
	"github.com/ebalashova/healthapp-cli/internal/cli"
	"github.com/ebalashova/healthapp-cli/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
