package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebalashova/healthapp-cli/internal/api"
	"github.com/ebalashova/healthapp-cli/internal/config"
	"github.com/ebalashova/healthapp-cli/internal/logging"
	"github.com/ebalashova/healthapp-cli/internal/services"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config          *config.Config
	log             logging.Logger
	authService     services.AuthService
	profileService  services.ProfileService
	catalogService  services.CatalogService
	postService     services.PostService
	quizService     services.QuizService
	progressService services.ProgressService
	userID          int64
	userName        string
	Mode            Mode
	reader          *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.Debug)

	apiClient, err := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config:          c,
		log:             logger,
		authService:     services.NewAuthService(apiClient),
		profileService:  services.NewProfileService(apiClient),
		catalogService:  services.NewCatalogService(apiClient),
		postService:     services.NewPostService(),
		quizService:     services.NewQuizService(),
		progressService: services.NewProgressService(),
		reader:          bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Server is %s\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher periodically pings the backend and flips the
// connectivity Mode accordingly. It blocks until ctx is cancelled, so run
// it in its own goroutine.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode != ModeOffline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
