package discord

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServer exposes the bot's liveness and metrics endpoints
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer builds the internal server; it does not listen until Start
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	srv := &HTTPServer{bot: bot}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/health", srv.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	srv.server = &http.Server{
		Addr:              net.JoinHostPort("", port),
		Handler:           r,
		ReadHeaderTimeout: HTTPReadHeaderTimeout,
	}
	return srv
}

// Handler returns the routed handler, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

// Start listens in the background; failures after startup are only logged
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServerStarting, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthServerFailed, "error", err)
		}
	}()
}

// Stop drains in-flight probes within HTTPShutdownTimeout
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), HTTPShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error(LogMsgHealthServerStopFailed, "error", err)
	}
}
