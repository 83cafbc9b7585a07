package cli

import (
	"bufio"
	"context"
	"log"
	"os"
)

// Root runs the interactive session: a welcome banner, a background
// connectivity watcher, and the command loop. It blocks until the user exits.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to Health App CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	runREPL(ctx, a, a.getStatus, scanner)
}
