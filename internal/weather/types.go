package weather

import "time"

// DefaultCacheTTL bounds how long a fetched forecast is reused.
const DefaultCacheTTL = 30 * time.Minute

// Report is the forecast of one day, taken at noon when available.
type Report struct {
	DateKey                  string `json:"dateKey"`
	City                     string `json:"city"`
	Hour                     string `json:"hour"`
	Temperature              int    `json:"temperature"`
	PrecipitationProbability *int   `json:"precipitationProbability,omitempty"`
	Code                     int    `json:"code"`
	Label                    string `json:"label"`
	Emoji                    string `json:"emoji"`
}
