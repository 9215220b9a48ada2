package settings

// DefaultCity is used until a city is saved.
const DefaultCity = "ירושלים"

// Settings is the single settings record.
type Settings struct {
	City     string   `json:"city"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Timezone string   `json:"timezone,omitempty"`
}

// HasCoords reports whether both coordinates are known.
func (s Settings) HasCoords() bool {
	return s.Lat != nil && s.Lon != nil
}
