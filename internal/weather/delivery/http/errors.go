package http

import (
	"errors"
	"net/http"

	"bnapp/internal/weather"
	pkgErrors "bnapp/pkg/errors"
)

var errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or today")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, weather.ErrNoForecast):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, weather.ErrNoLocation):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "weather service unavailable")
	}
}
