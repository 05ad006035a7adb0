package http

import (
	"net/http"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	"github.com/elhenawym124-ops/chatai-sub002/internal/routing"
	pkgErrors "github.com/elhenawym124-ops/chatai-sub002/pkg/errors"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

// unavailableMessage is the only thing end users see when every provider
// failed; the per-candidate reasons stay in logs and usage records.
const unavailableMessage = "AI temporarily unavailable, please try again later"

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case routing.ErrAllProvidersExhausted:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, unavailableMessage)
	case routing.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case credential.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
