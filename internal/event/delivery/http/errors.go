package http

import (
	"errors"
	"net/http"

	"bnapp/internal/event"
	pkgErrors "bnapp/pkg/errors"
)

var errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or today")

// mapError translates use-case errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrTitleRequired),
		errors.Is(err, event.ErrInvalidOwner),
		errors.Is(err, event.ErrInvalidType),
		errors.Is(err, event.ErrInvalidTime),
		errors.Is(err, event.ErrIncompleteTime),
		errors.Is(err, event.ErrInvalidUrgency),
		errors.Is(err, event.ErrInvalidRecurring),
		errors.Is(err, event.ErrInvalidDateKey),
		errors.Is(err, event.ErrInvalidFilter),
		errors.Is(err, event.ErrInvalidCalendar),
		errors.Is(err, event.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
