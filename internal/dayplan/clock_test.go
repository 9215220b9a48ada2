package dayplan_test

import (
	"errors"
	"testing"

	"bnapp/internal/dayplan"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "Midnight", in: "00:00", want: 0},
		{name: "Morning", in: "09:30", want: 570},
		{name: "Single digit hour", in: "8:05", want: 485},
		{name: "Last minute", in: "23:59", want: 1439},
		{name: "Surrounding spaces", in: " 10:15 ", want: 615},
		{name: "Hour out of range", in: "24:00", wantErr: true},
		{name: "Minute out of range", in: "10:60", wantErr: true},
		{name: "Missing colon", in: "1030", wantErr: true},
		{name: "Short minute", in: "10:5", wantErr: true},
		{name: "Letters", in: "ab:cd", wantErr: true},
		{name: "Negative", in: "-1:00", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dayplan.ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, dayplan.ErrInvalidClock) {
					t.Errorf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.in, err)
				}
				return
			}
			if got.Minutes() != tt.want {
				t.Errorf("ParseClock(%q).Minutes() = %d, want %d", tt.in, got.Minutes(), tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := dayplan.FormatMinutes(485); got != "08:05" {
		t.Errorf("FormatMinutes(485) = %q, want 08:05", got)
	}
	if got := dayplan.FormatRange(dayplan.Interval{Start: 500, End: 1320}); got != "08:20–22:00" {
		t.Errorf("FormatRange() = %q, want 08:20–22:00", got)
	}
	got := dayplan.FormatRanges([]dayplan.Interval{{Start: 480, End: 540}, {Start: 600, End: 660}})
	if len(got) != 2 || got[0] != "08:00–09:00" || got[1] != "10:00–11:00" {
		t.Errorf("FormatRanges() = %v", got)
	}
}
