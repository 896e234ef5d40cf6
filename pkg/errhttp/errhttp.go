// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to StatusFor for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/itemcatalog/pkg/httpx"
	"github.com/ghuser/itemcatalog/pkg/logger"
	"github.com/ghuser/itemcatalog/pkg/telemetry"
	itemdomain "github.com/ghuser/itemcatalog/services/item/domain"
)

// Responder writes JSON error responses for handler errors.
// Server errors are logged and reported to Sentry; in production their
// message is replaced with the generic status text.
type Responder struct {
	production bool
	log        logger.Logger
}

// NewResponder returns a Responder. production hides 5xx details from clients.
func NewResponder(production bool, log logger.Logger) *Responder {
	return &Responder{production: production, log: log}
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func (rs *Responder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		rs.log.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		telemetry.ReportError(r.Context(), err)
	}
	httpx.JSONError(w, status, message(err, status, rs.production))
}

// StatusFor returns the HTTP status code for err. ErrItemAlreadyExists is an
// internal id collision that survived every retry, so it maps to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrInvalidInput):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}

// message keeps validation details but strips internal wrapping from
// lookup failures, e.g. "get item: item not found" becomes "item not found".
func message(err error, status int, production bool) string {
	switch status {
	case http.StatusNotFound:
		return itemdomain.ErrItemNotFound.Error()
	default:
		return httpx.SafeError(err, status, production)
	}
}
