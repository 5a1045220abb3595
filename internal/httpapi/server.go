// Package httpapi wires the HTTP surface of the page server.
// Handlers stay thin and report failures as errs.Condition values, which are
// turned into responses in exactly one place.
package httpapi

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Options tunes request handling.
type Options struct {
	// BodyLimit caps the size of JSON request bodies in bytes.
	BodyLimit int64
}

const defaultBodyLimit = 2 << 20

// Server wires handlers and middleware using Chi.
type Server struct {
	assets    AssetLookup
	validate  *validator.Validate
	bodyLimit int64
	log       *slog.Logger
	rt        *chi.Mux
}

// New constructs the HTTP server with routes and middleware.
// The logger receives request logs, panics and error diagnostics.
func New(assets AssetLookup, opts Options, logger *slog.Logger) *Server {
	if opts.BodyLimit <= 0 {
		opts.BodyLimit = defaultBodyLimit
	}
	r := chi.NewRouter()
	r.Use(requestIDHeader)
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(metricsMiddleware)
	r.Use(recoverer(logger))

	s := &Server{
		assets:    assets,
		validate:  validator.New(),
		bodyLimit: opts.BodyLimit,
		log:       logger,
		rt:        r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }
