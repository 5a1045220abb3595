package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// toJSON sets the JSON content type, writes status and encodes v. Encoding
// failures happen after the header is sent, so they are only logged.
func toJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "err", err)
	}
}
