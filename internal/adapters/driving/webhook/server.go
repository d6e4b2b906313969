// Package webhook exposes the notification endpoints over HTTP.
package webhook

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nimbus-labs/driveingest/internal/core/ports/driving"
	"github.com/nimbus-labs/driveingest/internal/logger"
)

// Server hosts the webhook endpoints.
type Server struct {
	handler driving.NotificationHandler
	router  *chi.Mux
	httpSrv *http.Server
}

// NewServer builds the router around a notification handler.
func NewServer(addr string, handler driving.NotificationHandler) *Server {
	s := &Server{handler: handler}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/webhook/drive", s.handleChange)
	r.Post("/webhook/drive/file", s.handleFile)
	r.Get("/healthz", s.handleHealth)

	s.router = r
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router returns the underlying handler, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	logger.Info("Webhook server listening on %s", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
