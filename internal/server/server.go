// Package server exposes the render pipeline over HTTP.
//
// The server provides a small JSON API:
//
//   - POST /api/v1/render renders a tree document and returns the artifact
//     along with cache and timing information
//   - GET /healthz reports liveness
//   - GET /version reports build metadata
//
// Requests carry an X-Request-ID (honored when the client sends one,
// generated otherwise) which appears in every log line for the request.
// Rendering goes through pipeline.Runner, so the HTTP service and the CLI
// share caching and validation behavior.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/treeline/internal/config"
	"github.com/matzehuels/treeline/pkg/pipeline"
)

// shutdownTimeout bounds how long outstanding requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// Server is the HTTP render service.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults config.RenderConfig
	http     *http.Server
}

// New creates a server for the given configuration. The runner supplies the
// cache and render pipeline; it is not closed by the server.
func New(cfg *config.Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	s := &Server{
		runner:   runner,
		logger:   logger,
		defaults: cfg.Render,
	}
	s.http = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// routes builds the router with all middleware and endpoints registered.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.serverHeader)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully. It returns the listener error if the server fails to start.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		errs <- s.http.ListenAndServe()
	}()
	s.logger.Info("server listening", "addr", s.http.Addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.http.Close()
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
