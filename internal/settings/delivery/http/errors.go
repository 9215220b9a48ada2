package http

import (
	"errors"
	"net/http"

	"bnapp/internal/settings"
	pkgErrors "bnapp/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrCityRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, settings.ErrGeocodeFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
