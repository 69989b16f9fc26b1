// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shopcatalog/pkg/httpx"
	catalogdomain "github.com/ghuser/shopcatalog/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrDuplicateSlug):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrInvalidProduct):
		return http.StatusUnprocessableEntity // 422
	default:
		// ErrTxAborted with an unclassified cause lands here too: the
		// rollback already happened, callers just see the opaque failure.
		return http.StatusInternalServerError // 500
	}
}
