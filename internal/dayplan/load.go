package dayplan

import (
	"sort"
	"time"

	"bnapp/internal/model"
)

// ComputeDailyLoad summarizes the busy time and free windows of viewer on date.
// items is the full, unfiltered list stored for that date. The function is pure.
func ComputeDailyLoad(items []model.Item, viewer model.Owner, date time.Time) Summary {
	merged := MergeIntervals(BusyIntervals(items, viewer))

	total := 0
	for _, iv := range merged {
		total += iv.Len()
	}

	return Summary{
		Date:             date,
		TotalBusyMinutes: total,
		Busy:             merged,
		FreeSlots:        FreeSlots(merged, WindowStart, WindowEnd, MinFreeGap),
	}
}

// BusyIntervals converts the items relevant to viewer into minute intervals.
// Items owned by someone else, items without both times, items whose times do
// not parse and items that cross midnight are skipped.
func BusyIntervals(items []model.Item, viewer model.Owner) []Interval {
	out := make([]Interval, 0, len(items))
	for _, it := range items {
		if it.Owner != "" && it.Owner != viewer && it.Owner != model.OwnerShared {
			continue
		}
		iv, ok := itemInterval(it)
		if !ok {
			continue
		}
		out = append(out, iv)
	}
	return out
}

func itemInterval(it model.Item) (Interval, bool) {
	if !it.HasTime() {
		return Interval{}, false
	}
	start, err := ParseClock(it.StartTime)
	if err != nil {
		return Interval{}, false
	}
	end, err := ParseClock(it.EndTime)
	if err != nil {
		return Interval{}, false
	}
	iv := Interval{Start: start.Minutes(), End: end.Minutes()}
	if iv.End < iv.Start {
		return Interval{}, false
	}
	return iv, true
}

// MergeIntervals sorts by start and collapses overlapping or touching intervals.
// The input slice is not modified.
func MergeIntervals(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}
	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			last.End = max(last.End, iv.End)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// FreeSlots walks merged busy intervals and returns the gaps inside
// [windowStart, windowEnd) that are at least minGap long. Busy time past the
// window end closes the window rather than extending it.
func FreeSlots(merged []Interval, windowStart, windowEnd, minGap int) []Interval {
	free := make([]Interval, 0)
	cursor := windowStart
	for _, iv := range merged {
		if cursor >= windowEnd {
			break
		}
		if gapEnd := min(iv.Start, windowEnd); gapEnd-cursor >= minGap {
			free = append(free, Interval{Start: cursor, End: gapEnd})
		}
		cursor = max(cursor, iv.End)
	}
	if windowEnd-cursor >= minGap {
		free = append(free, Interval{Start: cursor, End: windowEnd})
	}
	return free
}

// LoadLevel buckets busy minutes: under 3h is light, under 6h medium.
func LoadLevel(busyMinutes int) Level {
	switch {
	case busyMinutes < 180:
		return LevelLight
	case busyMinutes < 360:
		return LevelMedium
	default:
		return LevelHeavy
	}
}
