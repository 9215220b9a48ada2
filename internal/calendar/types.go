package calendar

import "time"

// DefaultCacheTTL bounds how long Hebcal answers are reused.
const DefaultCacheTTL = 12 * time.Hour

// Day is one cell of the month grid.
type Day struct {
	DateKey        string       `json:"dateKey"`
	Day            int          `json:"day"`
	Weekday        time.Weekday `json:"weekday"`
	Today          bool         `json:"today"`
	HebrewDate     string       `json:"hebrewDate,omitempty"`
	HolidayName    string       `json:"holidayName,omitempty"`
	DayOff         bool         `json:"dayOff"`
	HasEvents      bool         `json:"hasEvents"`
	ItemCount      int          `json:"itemCount"`
	CandleLighting string       `json:"candleLighting,omitempty"`
	Havdalah       string       `json:"havdalah,omitempty"`
}

// MonthOutput is the grid of one Gregorian month. LeadingBlanks is the number
// of empty cells before day 1 in a Sunday-first week.
type MonthOutput struct {
	Year          int   `json:"year"`
	Month         int   `json:"month"`
	LeadingBlanks int   `json:"leadingBlanks"`
	Days          []Day `json:"days"`
}
