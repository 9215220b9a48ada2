package weather

import "errors"

var (
	ErrNoLocation = errors.New("no coordinates for the configured city")
	ErrNoForecast = errors.New("no forecast for the requested day")
)
