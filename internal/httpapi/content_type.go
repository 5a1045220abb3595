package httpapi

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/tinoosan/pageserve/internal/errs"
)

var errNotJSON = errors.New("expected request with `Content-Type: application/json`")

// requireJSON accepts application/json and application/*+json, with params.
// It returns a 415 condition otherwise.
func requireJSON(r *http.Request) errs.Condition {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return errs.MakeErr(http.StatusUnsupportedMediaType, errNotJSON)
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return errs.MakeErr(http.StatusUnsupportedMediaType, errNotJSON)
	}
	mt = strings.ToLower(mt)
	if mt == "application/json" || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json")) {
		return nil
	}
	return errs.MakeErr(http.StatusUnsupportedMediaType, errNotJSON)
}
