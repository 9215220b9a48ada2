package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// KeyLayout is the layout of date keys used by the store ("2024-05-01").
const KeyLayout = "2006-01-02"

// Parser resolves dates and relative Hebrew phrases in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Jerusalem"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// DateKey formats t as a date key in the parser's timezone.
func (p *Parser) DateKey(t time.Time) string {
	return t.In(p.location).Format(KeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key to midnight in the parser's timezone.
func (p *Parser) ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, strings.TrimSpace(key), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

var inDuration = regexp.MustCompile(`בעוד (\d+) (יום|ימים|שבוע|שבועות|חודש|חודשים)`)

// CommandDate finds a relative day phrase inside free text and resolves it
// against baseTime. Text with no recognized phrase resolves to today.
func (p *Parser) CommandDate(text string, baseTime time.Time) time.Time {
	switch {
	case strings.Contains(text, "מחרתיים"):
		return p.StartOfDay(baseTime.AddDate(0, 0, 2))
	case strings.Contains(text, "מחר"):
		return p.StartOfDay(baseTime.AddDate(0, 0, 1))
	case strings.Contains(text, "בעוד שבועיים"):
		return p.StartOfDay(baseTime.AddDate(0, 0, 14))
	case strings.Contains(text, "בעוד שבוע"):
		return p.StartOfDay(baseTime.AddDate(0, 0, 7))
	case strings.Contains(text, "בעוד חודש"):
		return p.StartOfDay(baseTime.AddDate(0, 1, 0))
	}

	if m := inDuration.FindStringSubmatch(text); len(m) == 3 {
		n, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "יום", "ימים":
			return p.StartOfDay(baseTime.AddDate(0, 0, n))
		case "שבוע", "שבועות":
			return p.StartOfDay(baseTime.AddDate(0, 0, n*7))
		default:
			return p.StartOfDay(baseTime.AddDate(0, n, 0))
		}
	}

	return p.StartOfDay(baseTime)
}

var atHour = regexp.MustCompile(`בשעה\s*(\d{1,2})(?::(\d+))?`)

// CommandHour extracts "בשעה N" or "בשעה N:MM" from free text. Spacing after
// "בשעה" is optional. A minute part must have exactly two digits.
func CommandHour(text string) (hour, minute int, ok bool) {
	m := atHour.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if hour > 23 {
		return 0, 0, false
	}
	if m[2] != "" {
		if len(m[2]) != 2 {
			return 0, 0, false
		}
		minute, _ = strconv.Atoi(m[2])
		if minute > 59 {
			return 0, 0, false
		}
	}
	return hour, minute, true
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DaysBack returns the date keys of the n days ending at end, oldest first.
func (p *Parser) DaysBack(end time.Time, n int) []string {
	start := p.StartOfDay(end)
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, p.DateKey(start.AddDate(0, 0, -i)))
	}
	return keys
}
