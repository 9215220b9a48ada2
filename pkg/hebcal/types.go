package hebcal

import "time"

const (
	CategoryCandles  = "candles"
	CategoryHavdalah = "havdalah"
)

// HebrewDate is the converter response.
type HebrewDate struct {
	Year   int      `json:"hy"`
	Month  string   `json:"hm"`
	Day    int      `json:"hd"`
	Hebrew string   `json:"hebrew"`
	Events []string `json:"events"`
}

// Item is one calendar entry of the hebcal and shabbat endpoints.
type Item struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Hebrew   string `json:"hebrew"`
}

// DisplayName prefers the Hebrew rendering.
func (it Item) DisplayName() string {
	if it.Hebrew != "" {
		return it.Hebrew
	}
	return it.Title
}

// ShabbatTimes holds the weekend boundaries; either may be nil.
type ShabbatTimes struct {
	CandleLighting *time.Time `json:"candleLighting,omitempty"`
	Havdalah       *time.Time `json:"havdalah,omitempty"`
}
