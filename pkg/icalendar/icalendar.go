// Package icalendar converts between calendar entries and RFC 5545 documents.
package icalendar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

const ProductID = "-//BNAPP//Calendar//HE"

// Event is the flat view of a VEVENT used for export and import.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	RRule       string
}

// Encode serializes events into a VCALENDAR document.
func Encode(name string, events []Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	if name != "" {
		cal.SetName(name)
		cal.SetXWRCalName(name)
	}

	for _, e := range events {
		ve := cal.AddEvent(e.UID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Summary)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if e.AllDay {
			ve.SetAllDayStartAt(e.Start)
			ve.SetAllDayEndAt(e.Start.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.Start)
			ve.SetEndAt(e.End)
		}
		if e.RRule != "" {
			ve.AddRrule(e.RRule)
		}
	}
	return cal.Serialize()
}

// Decode parses a VCALENDAR document. Floating times are read in loc and
// every time is returned in loc. Events without a start are skipped.
func Decode(r io.Reader, loc *time.Location) ([]Event, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read ics body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty ICS body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ics: %w", err)
	}

	events := make([]Event, 0)
	for _, ve := range cal.Events() {
		ev, ok := decodeEvent(ve, loc)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func decodeEvent(ve *ical.VEvent, loc *time.Location) (Event, bool) {
	var out Event
	out.UID = ve.Id()

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		out.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RRule = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return out, false
	}

	if !strings.Contains(dtStart.Value, "T") {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return out, false
		}
		out.AllDay = true
		out.Start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		out.End = out.Start.AddDate(0, 0, 1)
		return out, true
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, false
	}
	out.Start = inLocation(start, dtStart, loc)

	if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
		if end, err := ve.GetEndAt(); err == nil {
			out.End = inLocation(end, dtEnd, loc)
		}
	}
	if out.End.IsZero() || out.End.Before(out.Start) {
		out.End = out.Start
	}
	return out, true
}

// inLocation converts t to loc. Floating values (no Z, no TZID) keep their wall clock.
func inLocation(t time.Time, prop *ical.IANAProperty, loc *time.Location) time.Time {
	_, hasTZ := prop.ICalParameters["TZID"]
	if !hasTZ && !strings.HasSuffix(prop.Value, "Z") {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	}
	return t.In(loc)
}
