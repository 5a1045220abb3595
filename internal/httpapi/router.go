package httpapi

import (
	"fmt"
	"net/http"

	"github.com/tinoosan/pageserve/internal/errs"
)

// routes declares the public HTTP endpoints.
func (s *Server) routes() {
	s.rt.NotFound(s.notFound)
	s.rt.MethodNotAllowed(s.methodNotAllowed)

	s.rt.Post("/get", s.echo)

	s.rt.Get(staticPrefix, s.staticFile)
	s.rt.Head(staticPrefix, s.staticFile)
	s.rt.Get(staticPrefix+"/*", s.staticFile)
	s.rt.Head(staticPrefix+"/*", s.staticFile)

	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Handle("/metrics", metricsHandler())
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.fail(w, r, errs.MakeErr(http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path)))
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.fail(w, r, errs.MakeErr(http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed on %s", r.Method, r.URL.Path)))
}
