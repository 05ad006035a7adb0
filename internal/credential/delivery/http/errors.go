package http

import (
	"net/http"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	pkgErrors "github.com/elhenawym124-ops/chatai-sub002/pkg/errors"
	"github.com/elhenawym124-ops/chatai-sub002/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case credential.ErrNotFound, credential.ErrModelNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case credential.ErrEmptySecret, credential.ErrEmptyName, credential.ErrDuplicateName, credential.ErrUnsupportedModel:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
