// Package server initializes and runs the wpcloud API server. It opens the
// database, applies migrations, wires the services together, handles OS
// signals, and starts the HTTP endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wpsaas/wpcloud/internal/logging"
	"github.com/wpsaas/wpcloud/internal/server/backups"
	"github.com/wpsaas/wpcloud/internal/server/checkout"
	"github.com/wpsaas/wpcloud/internal/server/config"
	"github.com/wpsaas/wpcloud/internal/server/httpapi"
	"github.com/wpsaas/wpcloud/internal/server/repomanager"
	"github.com/wpsaas/wpcloud/internal/server/users"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	userService     *users.Service
	checkoutService *checkout.Service
	backupService   *backups.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := users.NewService(rm.Users(db), rm.RefreshTokens(db), cfg)
	cs := checkout.NewService(rm.Deployments(db), logger, cfg)
	bs := backups.NewService(cfg)

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		userService:     us,
		checkoutService: cs,
		backupService:   bs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger,
		app.userService, app.checkoutService, app.backupService, app.config.WebhookSecret)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "Error closing db", "error", err)
	}
}
