// Package recurrence evaluates the simple repeat rules items carry
// ("daily", "weekly", "monthly", "yearly") as RFC 5545 rules.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

var ErrUnknownFrequency = errors.New("unknown recurrence frequency")

var frequencies = map[string]rrule.Frequency{
	"daily":   rrule.DAILY,
	"weekly":  rrule.WEEKLY,
	"monthly": rrule.MONTHLY,
	"yearly":  rrule.YEARLY,
}

// ParseFrequency maps a repeat value to an rrule frequency. "none" and ""
// report ok=false.
func ParseFrequency(s string) (rrule.Frequency, bool) {
	f, ok := frequencies[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

// RRule returns the RRULE value ("FREQ=WEEKLY") for a repeat value, or "" for none.
func RRule(s string) string {
	name := strings.ToLower(strings.TrimSpace(s))
	if _, ok := frequencies[name]; !ok {
		return ""
	}
	return "FREQ=" + strings.ToUpper(name)
}

// FromRRule maps an RRULE value back to a repeat value. Rules with an
// interval other than 1, or a frequency finer than daily, map to "".
func FromRRule(value string) string {
	opt, err := rrule.StrToROption(value)
	if err != nil || (opt.Interval != 0 && opt.Interval != 1) {
		return ""
	}
	for name, f := range frequencies {
		if opt.Freq == f {
			return name
		}
	}
	return ""
}

// OccursOn reports whether a rule repeating every freq from anchor has an
// occurrence on the calendar day of date, both interpreted in date's location.
func OccursOn(anchor time.Time, freq string, date time.Time) (bool, error) {
	f, ok := ParseFrequency(freq)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownFrequency, freq)
	}

	loc := date.Location()
	a := anchor.In(loc)
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	if dayStart.Before(start) {
		return false, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{Freq: f, Dtstart: start})
	if err != nil {
		return false, fmt.Errorf("failed to build rrule: %w", err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return len(r.Between(dayStart, dayEnd, true)) > 0, nil
}

// Between returns the occurrence days of the rule within [from, to], in from's location.
func Between(anchor time.Time, freq string, from, to time.Time) ([]time.Time, error) {
	f, ok := ParseFrequency(freq)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, freq)
	}
	loc := from.Location()
	a := anchor.In(loc)
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)

	var set rrule.Set
	r, err := rrule.NewRRule(rrule.ROption{Freq: f, Dtstart: start})
	if err != nil {
		return nil, fmt.Errorf("failed to build rrule: %w", err)
	}
	set.RRule(r)
	return set.Between(from, to, true), nil
}
