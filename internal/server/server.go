package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/GardenBot_Go/docs" // swagger docs registration
	"github.com/osse101/GardenBot_Go/internal/decay"
	"github.com/osse101/GardenBot_Go/internal/garden"
	"github.com/osse101/GardenBot_Go/internal/handler"
	"github.com/osse101/GardenBot_Go/internal/metrics"
)

// Options configures the HTTP listener and middleware
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Deps are the services exposed over HTTP
type Deps struct {
	Store   handler.Pinger
	Garden  garden.Service
	Sweeper decay.Sweeper
}

// Server owns the API listener
type Server struct {
	httpServer *http.Server
}

// NewServer wires the router; nothing listens until Start
func NewServer(opts Options, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(opts Options, deps Deps) http.Handler {
	r := chi.NewRouter()

	guard := NewGuard(opts.APIKey, opts.TrustedProxies)

	// outermost first; rejected requests never reach metrics or logging
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(guard.RateLimit)
	r.Use(guard.Authenticate)
	r.Use(LimitBody(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))

	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	plants := handler.NewPlantHandler(deps.Garden)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", plants.HandleInfo)

		r.Route("/plant", func(r chi.Router) {
			r.Get("/", plants.HandleGetPlant)
			r.Post("/start", plants.HandleStart)
			r.Post("/water", plants.HandleWater)
			r.Post("/feed", plants.HandleFeed)
			r.Get("/leaderboard", plants.HandleLeaderboard)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/decay/run", handler.HandleRunDecay(deps.Sweeper))
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start blocks serving until Stop; it then returns http.ErrServerClosed
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops accepting connections and waits for active requests until ctx ends
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
