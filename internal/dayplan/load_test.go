package dayplan_test

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"bnapp/internal/dayplan"
	"bnapp/internal/model"
)

var testDate = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func timed(owner model.Owner, start, end string) model.Item {
	return model.Item{Owner: owner, Title: start, StartTime: start, EndTime: end}
}

func TestComputeDailyLoad(t *testing.T) {
	tests := []struct {
		name      string
		items     []model.Item
		viewer    model.Owner
		wantBusy  int
		wantMerge []dayplan.Interval
		wantFree  []dayplan.Interval
	}{
		{
			name:     "Empty day",
			viewer:   model.OwnerBinyamin,
			wantBusy: 0,
			wantFree: []dayplan.Interval{{Start: 480, End: 1320}},
		},
		{
			name: "Overlapping items merge",
			items: []model.Item{
				timed(model.OwnerBinyamin, "09:00", "10:00"),
				timed(model.OwnerBinyamin, "09:30", "11:00"),
			},
			viewer:    model.OwnerBinyamin,
			wantBusy:  120,
			wantMerge: []dayplan.Interval{{Start: 540, End: 660}},
			wantFree:  []dayplan.Interval{{Start: 480, End: 540}, {Start: 660, End: 1320}},
		},
		{
			name:      "Short gap before window start is dropped",
			items:     []model.Item{timed(model.OwnerShared, "08:00", "08:20")},
			viewer:    model.OwnerNana,
			wantBusy:  20,
			wantMerge: []dayplan.Interval{{Start: 480, End: 500}},
			wantFree:  []dayplan.Interval{{Start: 500, End: 1320}},
		},
		{
			name: "Other owner ignored",
			items: []model.Item{
				timed(model.OwnerNana, "09:00", "12:00"),
				timed(model.OwnerBinyamin, "13:00", "14:00"),
			},
			viewer:    model.OwnerBinyamin,
			wantBusy:  60,
			wantMerge: []dayplan.Interval{{Start: 780, End: 840}},
			wantFree:  []dayplan.Interval{{Start: 480, End: 780}, {Start: 840, End: 1320}},
		},
		{
			name:      "Empty owner is kept",
			items:     []model.Item{timed("", "10:00", "11:00")},
			viewer:    model.OwnerNana,
			wantBusy:  60,
			wantMerge: []dayplan.Interval{{Start: 600, End: 660}},
			wantFree:  []dayplan.Interval{{Start: 480, End: 600}, {Start: 660, End: 1320}},
		},
		{
			name: "Touching intervals merge",
			items: []model.Item{
				timed(model.OwnerBinyamin, "10:00", "11:00"),
				timed(model.OwnerBinyamin, "11:00", "12:00"),
			},
			viewer:    model.OwnerBinyamin,
			wantBusy:  120,
			wantMerge: []dayplan.Interval{{Start: 600, End: 720}},
			wantFree:  []dayplan.Interval{{Start: 480, End: 600}, {Start: 720, End: 1320}},
		},
		{
			name: "Gap shorter than threshold is not free",
			items: []model.Item{
				timed(model.OwnerBinyamin, "08:00", "12:00"),
				timed(model.OwnerBinyamin, "12:20", "22:00"),
			},
			viewer:    model.OwnerBinyamin,
			wantBusy:  820,
			wantMerge: []dayplan.Interval{{Start: 480, End: 720}, {Start: 740, End: 1320}},
			wantFree:  []dayplan.Interval{},
		},
		{
			name: "Exact threshold gap is free",
			items: []model.Item{
				timed(model.OwnerBinyamin, "08:00", "12:00"),
				timed(model.OwnerBinyamin, "12:30", "22:00"),
			},
			viewer:    model.OwnerBinyamin,
			wantBusy:  810,
			wantMerge: []dayplan.Interval{{Start: 480, End: 720}, {Start: 750, End: 1320}},
			wantFree:  []dayplan.Interval{{Start: 720, End: 750}},
		},
		{
			name: "Busy outside window counts but leaves window free",
			items: []model.Item{
				timed(model.OwnerBinyamin, "00:00", "07:00"),
				timed(model.OwnerBinyamin, "22:30", "23:30"),
			},
			viewer:    model.OwnerBinyamin,
			wantBusy:  480,
			wantMerge: []dayplan.Interval{{Start: 0, End: 420}, {Start: 1350, End: 1410}},
			wantFree:  []dayplan.Interval{{Start: 480, End: 1320}},
		},
		{
			name: "Item straddling window start advances cursor",
			items: []model.Item{
				timed(model.OwnerBinyamin, "07:00", "09:00"),
			},
			viewer:    model.OwnerBinyamin,
			wantBusy:  120,
			wantMerge: []dayplan.Interval{{Start: 420, End: 540}},
			wantFree:  []dayplan.Interval{{Start: 540, End: 1320}},
		},
		{
			name: "Malformed and missing times are ignored",
			items: []model.Item{
				{Owner: model.OwnerBinyamin, Title: "no times"},
				{Owner: model.OwnerBinyamin, StartTime: "10:00"},
				timed(model.OwnerBinyamin, "1x:00", "11:00"),
				timed(model.OwnerBinyamin, "10:00", "25:00"),
			},
			viewer:   model.OwnerBinyamin,
			wantBusy: 0,
			wantFree: []dayplan.Interval{{Start: 480, End: 1320}},
		},
		{
			name:     "Crossing midnight is excluded",
			items:    []model.Item{timed(model.OwnerBinyamin, "23:00", "01:00")},
			viewer:   model.OwnerBinyamin,
			wantBusy: 0,
			wantFree: []dayplan.Interval{{Start: 480, End: 1320}},
		},
		{
			name:      "Zero length item contributes nothing",
			items:     []model.Item{timed(model.OwnerBinyamin, "12:00", "12:00")},
			viewer:    model.OwnerBinyamin,
			wantBusy:  0,
			wantMerge: []dayplan.Interval{{Start: 720, End: 720}},
			wantFree:  []dayplan.Interval{{Start: 480, End: 720}, {Start: 720, End: 1320}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dayplan.ComputeDailyLoad(tt.items, tt.viewer, testDate)
			if got.TotalBusyMinutes != tt.wantBusy {
				t.Errorf("TotalBusyMinutes = %d, want %d", got.TotalBusyMinutes, tt.wantBusy)
			}
			if len(got.Busy) != len(tt.wantMerge) || (len(tt.wantMerge) > 0 && !reflect.DeepEqual(got.Busy, tt.wantMerge)) {
				t.Errorf("Busy = %v, want %v", got.Busy, tt.wantMerge)
			}
			if len(got.FreeSlots) != len(tt.wantFree) || (len(tt.wantFree) > 0 && !reflect.DeepEqual(got.FreeSlots, tt.wantFree)) {
				t.Errorf("FreeSlots = %v, want %v", got.FreeSlots, tt.wantFree)
			}
			if !got.Date.Equal(testDate) {
				t.Errorf("Date = %v, want %v", got.Date, testDate)
			}
		})
	}
}

func TestComputeDailyLoad_DoesNotMutateInput(t *testing.T) {
	items := []model.Item{
		timed(model.OwnerBinyamin, "12:00", "13:00"),
		timed(model.OwnerBinyamin, "09:00", "10:00"),
	}
	before := make([]model.Item, len(items))
	copy(before, items)

	first := dayplan.ComputeDailyLoad(items, model.OwnerBinyamin, testDate)
	second := dayplan.ComputeDailyLoad(items, model.OwnerBinyamin, testDate)

	if !reflect.DeepEqual(items, before) {
		t.Errorf("input was reordered: %v", items)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between calls: %v vs %v", first, second)
	}
}

func TestComputeDailyLoad_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	owners := []model.Owner{model.OwnerBinyamin, model.OwnerNana, model.OwnerShared}

	for round := 0; round < 300; round++ {
		n := rng.Intn(12)
		items := make([]model.Item, 0, n)
		for i := 0; i < n; i++ {
			start := rng.Intn(dayplan.MinutesPerDay)
			end := start + rng.Intn(dayplan.MinutesPerDay-start)
			items = append(items, timed(owners[rng.Intn(len(owners))],
				dayplan.FormatMinutes(start), dayplan.FormatMinutes(end)))
		}

		got := dayplan.ComputeDailyLoad(items, model.OwnerBinyamin, testDate)

		if got.TotalBusyMinutes < 0 || got.TotalBusyMinutes > dayplan.MinutesPerDay {
			t.Fatalf("round %d: busy total %d out of range", round, got.TotalBusyMinutes)
		}
		for i, iv := range got.Busy {
			if i > 0 && iv.Start <= got.Busy[i-1].End {
				t.Fatalf("round %d: merged intervals overlap or touch: %v", round, got.Busy)
			}
		}
		for i, iv := range got.FreeSlots {
			if iv.Len() < dayplan.MinFreeGap {
				t.Fatalf("round %d: free slot %v shorter than %d", round, iv, dayplan.MinFreeGap)
			}
			if iv.Start < dayplan.WindowStart || iv.End > dayplan.WindowEnd {
				t.Fatalf("round %d: free slot %v outside window", round, iv)
			}
			if i > 0 && iv.Start < got.FreeSlots[i-1].End {
				t.Fatalf("round %d: free slots overlap: %v", round, got.FreeSlots)
			}
			for _, b := range got.Busy {
				if iv.Start < b.End && b.Start < iv.End {
					t.Fatalf("round %d: free slot %v overlaps busy %v", round, iv, b)
				}
			}
		}

		remerged := dayplan.MergeIntervals(got.Busy)
		if !reflect.DeepEqual(remerged, got.Busy) {
			t.Fatalf("round %d: merge is not idempotent: %v vs %v", round, remerged, got.Busy)
		}
	}
}

func TestMergeIntervals(t *testing.T) {
	if got := dayplan.MergeIntervals(nil); got != nil {
		t.Errorf("MergeIntervals(nil) = %v, want nil", got)
	}

	in := []dayplan.Interval{{Start: 600, End: 700}, {Start: 100, End: 200}, {Start: 150, End: 160}, {Start: 650, End: 800}}
	want := []dayplan.Interval{{Start: 100, End: 200}, {Start: 600, End: 800}}
	got := dayplan.MergeIntervals(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeIntervals() = %v, want %v", got, want)
	}
	if in[0].Start != 600 {
		t.Errorf("input slice was modified: %v", in)
	}
}

func TestLoadLevel(t *testing.T) {
	tests := []struct {
		minutes int
		want    dayplan.Level
	}{
		{0, dayplan.LevelLight},
		{179, dayplan.LevelLight},
		{180, dayplan.LevelMedium},
		{359, dayplan.LevelMedium},
		{360, dayplan.LevelHeavy},
		{900, dayplan.LevelHeavy},
	}
	for _, tt := range tests {
		if got := dayplan.LoadLevel(tt.minutes); got != tt.want {
			t.Errorf("LoadLevel(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}

func TestFreeSlots_ClipsToWindow(t *testing.T) {
	merged := []dayplan.Interval{{Start: 1300, End: 1400}}
	got := dayplan.FreeSlots(merged, dayplan.WindowStart, dayplan.WindowEnd, dayplan.MinFreeGap)
	want := []dayplan.Interval{{Start: 480, End: 1300}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeSlots() = %v, want %v", got, want)
	}

	late := []dayplan.Interval{{Start: 1380, End: 1400}}
	got = dayplan.FreeSlots(late, dayplan.WindowStart, dayplan.WindowEnd, dayplan.MinFreeGap)
	want = []dayplan.Interval{{Start: 480, End: 1320}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeSlots() = %v, want %v", got, want)
	}
}
