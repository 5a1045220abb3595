package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/pageserve/internal/errs"
)

var (
	errEmptyBody      = errors.New("EOF while parsing a value")
	errTrailingValues = errors.New("trailing characters after JSON value")
)

// echo handles POST /get: the payload comes back as indented JSON text.
func (s *Server) echo(w http.ResponseWriter, r *http.Request) {
	if c := requireJSON(r); c != nil {
		s.fail(w, r, c)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.bodyLimit)
	req, err := decodeEcho(r.Body)
	if err != nil {
		s.fail(w, r, decodeCondition(err))
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.log.Debug("echo payload rejected", "req_id", chimw.GetReqID(r.Context()), "err", err)
		s.fail(w, r, errs.Validation{})
		return
	}
	out, err := json.MarshalIndent(req.payload(), "", "  ")
	if err != nil {
		s.fail(w, r, errs.ServerErr(err))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// decodeEcho reads exactly one JSON value from body.
func decodeEcho(body io.Reader) (echoRequest, error) {
	var req echoRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errEmptyBody
		}
		return req, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, err
		}
		return req, errTrailingValues
	}
	return req, nil
}

// decodeCondition classifies body decoding failures: oversized bodies are
// 413, values of the wrong JSON type are payload shape failures, anything
// else is a 400.
func decodeCondition(err error) errs.Condition {
	var (
		maxErr  *http.MaxBytesError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxErr):
		return errs.MakeErr(http.StatusRequestEntityTooLarge, err)
	case errors.As(err, &typeErr):
		return errs.Validation{}
	default:
		return errs.MakeErr(http.StatusBadRequest, err)
	}
}
