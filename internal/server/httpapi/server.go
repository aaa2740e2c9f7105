// Package httpapi exposes the wpcloud API over HTTP: account registration
// and login, checkout session creation, backup presign URLs, the payment
// provider webhook, and a health probe.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/wpsaas/wpcloud/internal/logging"
	"github.com/wpsaas/wpcloud/internal/server/backups"
	"github.com/wpsaas/wpcloud/internal/server/checkout"
	"github.com/wpsaas/wpcloud/internal/server/users"
)

type HTTPServer struct {
	address       string
	logger        logging.Logger
	users         *users.Service
	checkout      *checkout.Service
	backups       *backups.Service
	webhookSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, cs *checkout.Service, bs *backups.Service, webhookSecret string) *HTTPServer {
	return &HTTPServer{
		address:       a,
		logger:        l.With("module", "http_server"),
		users:         us,
		checkout:      cs,
		backups:       bs,
		webhookSecret: []byte(webhookSecret),
	}
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/refresh", s.handleRefresh)
	mux.HandleFunc("POST /api/checkout/session", s.requireAuth(s.handleCreateCheckoutSession))
	mux.HandleFunc("GET /api/backups/upload-url", s.requireAuth(s.handleBackupUploadURL))
	mux.HandleFunc("GET /api/backups/download-url", s.requireAuth(s.handleBackupDownloadURL))
	mux.HandleFunc("POST /webhook/payments", s.handleWebhook)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	return mux
}
