package icalendar_test

import (
	"strings"
	"testing"
	"time"

	"bnapp/pkg/icalendar"
)

const sample = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:utc-1\r\n" +
	"DTSTAMP:20240501T000000Z\r\n" +
	"SUMMARY:Dentist\r\n" +
	"LOCATION:Herzl 1\r\n" +
	"DTSTART:20240501T060000Z\r\n" +
	"DTEND:20240501T070000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:floating-1\r\n" +
	"DTSTAMP:20240501T000000Z\r\n" +
	"SUMMARY:Gym\r\n" +
	"DTSTART:20240502T183000\r\n" +
	"DTEND:20240502T193000\r\n" +
	"RRULE:FREQ=WEEKLY\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:allday-1\r\n" +
	"DTSTAMP:20240501T000000Z\r\n" +
	"SUMMARY:Holiday\r\n" +
	"DTSTART;VALUE=DATE:20240503\r\n" +
	"DTEND;VALUE=DATE:20240504\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:nostart-1\r\n" +
	"DTSTAMP:20240501T000000Z\r\n" +
	"SUMMARY:Broken\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestDecode(t *testing.T) {
	loc := time.FixedZone("IDT", 3*60*60)

	events, err := icalendar.Decode(strings.NewReader(sample), loc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("Decode() returned %d events, want 3", len(events))
	}

	utc := events[0]
	if utc.Summary != "Dentist" || utc.Location != "Herzl 1" {
		t.Errorf("unexpected fields: %+v", utc)
	}
	if got := utc.Start.Format("2006-01-02 15:04"); got != "2024-05-01 09:00" {
		t.Errorf("UTC start in loc = %s, want 2024-05-01 09:00", got)
	}

	floating := events[1]
	if got := floating.Start.Format("15:04"); got != "18:30" {
		t.Errorf("floating start = %s, want 18:30", got)
	}
	if floating.RRule != "FREQ=WEEKLY" {
		t.Errorf("RRule = %q", floating.RRule)
	}

	allDay := events[2]
	if !allDay.AllDay || allDay.Start.Format("2006-01-02") != "2024-05-03" {
		t.Errorf("all-day event = %+v", allDay)
	}
}

func TestDecode_Empty(t *testing.T) {
	if _, err := icalendar.Decode(strings.NewReader("  "), time.UTC); err == nil {
		t.Fatal("expected error for empty body")
	}
}

func TestEncode(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	out := icalendar.Encode("BNAPP", []icalendar.Event{
		{
			UID:     "a@bnapp",
			Summary: "Meeting",
			Start:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			RRule:   "FREQ=DAILY",
		},
		{
			UID:     "b@bnapp",
			Summary: "Trip",
			Start:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			AllDay:  true,
		},
	}, stamp)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + icalendar.ProductID,
		"UID:a@bnapp",
		"DTSTART:20240501T090000Z",
		"RRULE:FREQ=DAILY",
		"DTSTART;VALUE=DATE:20240502",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Encode() output missing %q:\n%s", want, out)
		}
	}

	back, err := icalendar.Decode(strings.NewReader(out), time.UTC)
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if len(back) != 2 || back[0].Summary != "Meeting" || !back[1].AllDay {
		t.Errorf("Decode(Encode()) = %+v", back)
	}
}
