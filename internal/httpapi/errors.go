package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/pageserve/internal/errs"
)

// errorResponse is the error payload for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// writeCondition is the only place failures become responses. The trace line
// is emitted before the body is written; logging never affects the response.
func writeCondition(w http.ResponseWriter, r *http.Request, l *slog.Logger, c errs.Condition) {
	status, msg := errs.Normalize(c)
	if stack, ok := errs.Trace(c); ok && l != nil {
		l.Debug("stacktrace",
			"req_id", chimw.GetReqID(r.Context()),
			"status", status,
			"detail", msg,
			"stack", stack,
		)
	}
	errorResponsesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	toJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, c errs.Condition) {
	writeCondition(w, r, s.log, c)
}
