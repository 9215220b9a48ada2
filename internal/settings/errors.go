package settings

import "errors"

var (
	ErrCityRequired  = errors.New("city is required")
	ErrGeocodeFailed = errors.New("failed to locate city")
)
