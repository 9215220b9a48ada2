package event

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidOwner     = errors.New("invalid owner")
	ErrInvalidType      = errors.New("invalid item type")
	ErrInvalidTime      = errors.New("invalid start or end time")
	ErrIncompleteTime   = errors.New("start and end time must be set together")
	ErrInvalidUrgency   = errors.New("invalid urgency")
	ErrInvalidRecurring = errors.New("invalid recurring value")
	ErrInvalidDateKey   = errors.New("invalid date key")
	ErrInvalidFilter    = errors.New("invalid task filter")
	ErrInvalidCalendar  = errors.New("invalid calendar file")
	ErrInvalidRange     = errors.New("invalid date range")
)
