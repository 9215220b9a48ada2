package http

import (
	"errors"
	"net/http"

	"bnapp/internal/event"
	"bnapp/internal/gihari"
	pkgErrors "bnapp/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, gihari.ErrEmptyCommand),
		errors.Is(err, event.ErrTitleRequired),
		errors.Is(err, event.ErrInvalidTime):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
