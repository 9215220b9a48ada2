package openmeteo

import "strings"

// Place is one geocoding match.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Country   string  `json:"country"`
}

// Hourly holds parallel arrays indexed by hour.
type Hourly struct {
	Time                     []string   `json:"time"`
	Temperature2m            []float64  `json:"temperature_2m"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	WeatherCode              []int      `json:"weather_code"`
}

// Empty reports whether the forecast carries no temperatures.
func (h Hourly) Empty() bool {
	return len(h.Temperature2m) == 0
}

// IndexAt returns the index of the first hour ending with hhmm ("12:00"), or 0.
func (h Hourly) IndexAt(hhmm string) int {
	for i, t := range h.Time {
		if strings.HasSuffix(t, hhmm) {
			return i
		}
	}
	return 0
}

// Condition is the display form of a WMO weather code.
type Condition struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// Describe maps a WMO weather code to a Hebrew label and emoji.
func Describe(code int) Condition {
	switch code {
	case 0:
		return Condition{Label: "שמים בהירים", Emoji: "☀️"}
	case 1, 2, 3:
		return Condition{Label: "מעונן חלקית", Emoji: "🌤️"}
	case 45, 48:
		return Condition{Label: "ערפל", Emoji: "🌫️"}
	case 51, 53, 55:
		return Condition{Label: "טיפטוף", Emoji: "🌦️"}
	case 61, 63, 65:
		return Condition{Label: "גשם", Emoji: "🌧️"}
	case 71, 73, 75, 77:
		return Condition{Label: "שלג", Emoji: "❄️"}
	case 80, 81, 82:
		return Condition{Label: "ממטרים", Emoji: "🌧️"}
	case 95, 96, 99:
		return Condition{Label: "סופות רעמים", Emoji: "⛈️"}
	}
	return Condition{Label: "מזג אוויר", Emoji: "🌦️"}
}
