// Package server exposes tile generation over HTTP.
//
// # Routes
//
//	GET /healthz                   liveness probe
//	GET /palettes                  built-in palettes as JSON
//	GET /tiles/random.{format}     redirect to a tile with a fresh random seed
//	GET /tiles/{seed}.{format}     one tile, e.g. /tiles/alice.png?size=9&symmetry=quad
//
// Query parameters mirror the generate command flags: size, scale, symmetry,
// palette, fill, color, bias, grayscale and upscale. Unset parameters fall
// back to the server's defaults.
//
// Seeded tiles are deterministic, so responses carry a strong ETag and a
// long-lived Cache-Control header.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/randpix/pkg/pipeline"
)

// Default server settings.
const (
	DefaultAddr         = ":8080"
	DefaultTimeout      = 10 * time.Second
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 30 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// Config configures a Server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// Defaults are the generation options applied before query parameters.
	Defaults pipeline.Options

	// Timeout bounds the handling of one request.
	Timeout time.Duration

	Logger *log.Logger
}

// Server serves tiles from a pipeline runner.
type Server struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	logger   *log.Logger
	addr     string
	timeout  time.Duration
	router   chi.Router
}

// New builds a server around runner. The runner's cache is shared by every
// request.
func New(runner *pipeline.Runner, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = runner.Logger
	}

	s := &Server{
		runner:   runner,
		defaults: cfg.Defaults,
		logger:   cfg.Logger.WithPrefix("http"),
		addr:     cfg.Addr,
		timeout:  cfg.Timeout,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	r.Get("/palettes", s.handlePalettes)
	r.Route("/tiles", func(r chi.Router) {
		r.Get("/random.{format:[a-z]+}", s.handleRandomTile)
		r.Get("/{seed}.{format:[a-z]+}", s.handleTile)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(r.URL.Path))
	})
	return r
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
