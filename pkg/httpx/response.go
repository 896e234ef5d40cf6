package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every error response. Fields is only set
// for request validation failures and maps a field path to its message.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes v as JSON with the given status code. Encoding errors are
// dropped; the header has already been sent by then.
func JSON(w http.ResponseWriter, status int, v any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// JSONFieldErrors writes {"error": message, "fields": {...}}.
func JSONFieldErrors(w http.ResponseWriter, status int, message string, fields map[string]string) {
	JSON(w, status, ErrorBody{Error: message, Fields: fields})
}

// SafeError hides 5xx details from clients in production.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
