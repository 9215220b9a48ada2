package http

import (
	"errors"
	"net/http"

	"bnapp/internal/shopping"
	pkgErrors "bnapp/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, shopping.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, shopping.ErrTextRequired), errors.Is(err, shopping.ErrInvalidList):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
