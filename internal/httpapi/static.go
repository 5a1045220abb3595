package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/pageserve/internal/errs"
	"github.com/tinoosan/pageserve/internal/static"
)

const (
	staticPrefix = "/static"
	htmlSuffix   = ".html"
)

// staticFile handles GET /static/*. A "not found" lookup is retried once with
// ".html" appended to the raw request URI.
func (s *Server) staticFile(w http.ResponseWriter, r *http.Request) {
	asset, err := s.assets.Lookup(r.Context(), strings.TrimPrefix(r.URL.Path, staticPrefix))
	if err == nil {
		s.serveAsset(w, r, asset)
		return
	}
	if !errors.Is(err, errs.ErrNotFound) {
		s.lookupFailed(w, r, err)
		return
	}

	fallback, err := htmlFallback(staticURI(r))
	if err != nil {
		staticFallbackTotal.WithLabelValues(fallbackMalformed).Inc()
		s.fail(w, r, errs.MakeErr(http.StatusNotFound, err))
		return
	}
	asset, err = s.assets.Lookup(r.Context(), fallback.Path)
	switch {
	case err == nil:
		staticFallbackTotal.WithLabelValues(fallbackHit).Inc()
		s.serveAsset(w, r, asset)
	case errors.Is(err, errs.ErrNotFound):
		staticFallbackTotal.WithLabelValues(fallbackMiss).Inc()
		s.fail(w, r, errs.MakeErr(http.StatusNotFound, err))
	default:
		staticFallbackTotal.WithLabelValues(fallbackError).Inc()
		s.lookupFailed(w, r, err)
	}
}

// lookupFailed answers an internal lookup error. Filesystem paths only go to
// the debug log.
func (s *Server) lookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	var le *static.LookupError
	if errors.As(err, &le) {
		s.log.Debug("static lookup failed", "req_id", chimw.GetReqID(r.Context()), "err", le.Full())
	}
	s.fail(w, r, errs.MakeErr(http.StatusInternalServerError, err))
}

// staticURI is the request URI (escaped path and query) below the static
// prefix, always starting with a slash.
func staticURI(r *http.Request) string {
	uri := strings.TrimPrefix(r.URL.RequestURI(), staticPrefix)
	if !strings.HasPrefix(uri, "/") {
		uri = "/" + uri
	}
	return uri
}

// htmlFallback appends the suffix to the URI text as-is, so a query string
// ends up carrying it instead of the path.
func htmlFallback(uri string) (*url.URL, error) {
	return url.ParseRequestURI(uri + htmlSuffix)
}

func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request, a static.Asset) {
	if a.Redirect() {
		http.Redirect(w, r, a.Location, http.StatusTemporaryRedirect)
		return
	}
	defer a.Close()
	http.ServeContent(w, r, a.Info.Name(), a.Info.ModTime(), a.File)
}
