package middleware

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError reports a middleware-level failure (bad CSRF token, mostly) in
// the shape the caller can digest: a JSON body for htmx swap targets, plain
// text for a full page load. Handlers render their own localized error
// views; this path is only for requests that never reach a handler.
func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
		return
	}
	http.Error(w, msg, code)
}
