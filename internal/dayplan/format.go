package dayplan

import "fmt"

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatRange renders an interval as HH:MM–HH:MM.
func FormatRange(iv Interval) string {
	return FormatMinutes(iv.Start) + "–" + FormatMinutes(iv.End)
}

// FormatRanges renders each interval with FormatRange.
func FormatRanges(ivs []Interval) []string {
	out := make([]string, len(ivs))
	for i, iv := range ivs {
		out[i] = FormatRange(iv)
	}
	return out
}
