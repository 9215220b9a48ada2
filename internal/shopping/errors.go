package shopping

import "errors"

var (
	ErrItemNotFound = errors.New("shopping item not found")
	ErrTextRequired = errors.New("text is required")
	ErrInvalidList  = errors.New("invalid list name")
)
