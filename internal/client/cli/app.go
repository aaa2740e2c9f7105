package cli

import (
	"bufio"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/wpsaas/wpcloud/internal/client/api"
	"github.com/wpsaas/wpcloud/internal/client/config"
	"github.com/wpsaas/wpcloud/internal/client/confirmation"
	"github.com/wpsaas/wpcloud/internal/client/state"
	"github.com/wpsaas/wpcloud/internal/logging"
	"github.com/wpsaas/wpcloud/internal/session"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	apiClient api.Client
	sessions  *session.Manager
	logger    logging.Logger
	Mode      Mode
	reader    *bufio.Reader
}

func NewApp(c *config.Config, l logging.Logger) (*App, error) {

	ctx := context.Background()

	_, store, err := state.Open(ctx, c.StateDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr)
	sessions := session.NewManager(ctx, store, l)

	return &App{
		config:    c,
		apiClient: apiClient,
		sessions:  sessions,
		logger:    l,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Auth().User != nil
}

func (a *App) Run(ctx context.Context) {
	go a.startConfirmationListener(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	a.Root(ctx)
}

// startConfirmationListener serves the payment confirmation page the
// provider redirects the browser to after checkout.
func (a *App) startConfirmationListener(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/confirmation", confirmation.NewHandler(a.logger))

	srv := &http.Server{
		Addr:    a.config.CallbackAddr,
		Handler: confirmation.Middleware(a.sessions, mux),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error(ctx, "Confirmation listener stopped", "error", err)
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
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
