// Package server exposes the allocation functions over HTTP.
//
// All endpoints accept and return JSON:
//
//	POST /v1/resolve     {"total":10,"edges":[{"size":3},{"ratio":2}]}  -> {"sizes":[3,7]}
//	POST /v1/reduce      {"total":2,"ratios":[1,1],"maximums":[10,10],"values":[9,3]} -> {"values":[8,2]}
//	POST /v1/distribute  {"total":7,"ratios":[1,1,1]}                   -> {"parts":[3,2,2]}
//	POST /v1/rule        {"title":"Hi","width":20}                       -> {"line":"..."}
//	GET  /healthz
//
// Errors are returned as {"code":"INVALID_INPUT","message":"..."} with
// status 400 for malformed input, 422 for INVALID_CONFIGURATION and 500
// otherwise. Every response carries an X-Request-ID header; a client
// supplied value is echoed back, otherwise a UUID is generated.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ratiosplit/pkg/pipeline"
)

const (
	// maxBodyBytes caps request bodies.
	maxBodyBytes = 1 << 20

	// DefaultRuleWidth is used by /v1/rule when the request has no width.
	DefaultRuleWidth = 80

	shutdownTimeout = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server that runs allocations with runner.
// A nil logger falls back to the runner's logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(logger)
	}
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the router with all routes and middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/resolve", s.handleResolve)
		r.Post("/reduce", s.handleReduce)
		r.Post("/distribute", s.handleDistribute)
		r.Post("/rule", s.handleRule)
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
