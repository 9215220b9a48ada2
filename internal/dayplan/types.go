package dayplan

import "time"

const (
	MinutesPerDay = 24 * 60

	// WindowStart and WindowEnd bound the observation window (08:00–22:00).
	WindowStart = 8 * 60
	WindowEnd   = 22 * 60

	// MinFreeGap is the shortest gap reported as free time.
	MinFreeGap = 30
)

// Interval is a half-open [Start, End) range of minutes since midnight.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the interval length in minutes.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// Summary is the busy/free picture of one day for one viewer.
type Summary struct {
	Date             time.Time
	TotalBusyMinutes int
	Busy             []Interval // merged, sorted, disjoint
	FreeSlots        []Interval
}

// Level buckets a day's busy time.
type Level string

const (
	LevelLight  Level = "light"
	LevelMedium Level = "medium"
	LevelHeavy  Level = "heavy"
)

// Label is the Hebrew display name.
func (l Level) Label() string {
	switch l {
	case LevelLight:
		return "יום קל"
	case LevelMedium:
		return "יום בינוני"
	default:
		return "יום עמוס"
	}
}
