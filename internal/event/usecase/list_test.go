package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"bnapp/internal/event"
	"bnapp/internal/model"
)

func TestListDay_IncludesRecurringAndSorts(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)

	r.put(model.Item{ID: "a", DateKey: "2024-05-08", Title: "untimed", Owner: model.OwnerNana})
	r.put(model.Item{ID: "b", DateKey: "2024-05-08", Title: "late", Owner: model.OwnerNana, StartTime: "18:00", EndTime: "19:00"})
	r.put(model.Item{ID: "c", DateKey: "2024-05-08", Title: "early", Owner: model.OwnerBinyamin, StartTime: "08:00", EndTime: "09:00"})
	r.put(model.Item{ID: "w", DateKey: "2024-05-01", Title: "weekly", Owner: model.OwnerShared,
		StartTime: "12:00", EndTime: "13:00", Recurring: model.RecurrenceWeekly})
	r.put(model.Item{ID: "m", DateKey: "2024-05-02", Title: "monthly", Owner: model.OwnerShared, Recurring: model.RecurrenceMonthly})
	r.holidays["2024-05-08"] = true

	out, err := uc.ListDay(context.Background(), binyamin, day(2024, 5, 8))
	if err != nil {
		t.Fatalf("ListDay: %v", err)
	}
	if !out.Holiday || out.DateKey != "2024-05-08" {
		t.Errorf("unexpected day header %+v", out)
	}

	want := []string{"early", "weekly", "late", "untimed"}
	if len(out.Items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(out.Items), len(want), out.Items)
	}
	for i, title := range want {
		if out.Items[i].Title != title {
			t.Errorf("item %d = %q, want %q", i, out.Items[i].Title, title)
		}
	}
}

func TestListDay_RecurringNotBeforeAnchor(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)
	r.put(model.Item{ID: "d", DateKey: "2024-05-10", Title: "daily", Recurring: model.RecurrenceDaily})

	out, err := uc.ListDay(context.Background(), binyamin, day(2024, 5, 9))
	if err != nil {
		t.Fatalf("ListDay: %v", err)
	}
	if len(out.Items) != 0 {
		t.Errorf("rule must not apply before its anchor: %+v", out.Items)
	}
}

func TestListTasks(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)

	r.put(model.Item{ID: "1", DateKey: "2024-05-03", Type: model.ItemTypeTask, Title: "dated"})
	r.put(model.Item{ID: "2", DateKey: model.UndatedKey, Type: model.ItemTypeTask, Title: "undated"})
	r.put(model.Item{ID: "3", DateKey: "2024-05-01", Type: model.ItemTypeTask, Title: "recurring", Recurring: model.RecurrenceWeekly})
	r.put(model.Item{ID: "4", DateKey: "2024-05-01", Type: model.ItemTypeEvent, Title: "event"})
	r.put(model.Item{ID: "5", DateKey: "2024-05-02", Type: model.ItemTypeTask, Title: "dated early"})

	tests := []struct {
		filter event.TaskFilter
		want   []string
	}{
		{filter: "", want: []string{"undated"}},
		{filter: event.TaskFilterDated, want: []string{"dated early", "dated"}},
		{filter: event.TaskFilterRecurring, want: []string{"recurring"}},
		{filter: event.TaskFilterAll, want: []string{"undated", "recurring", "dated early", "dated"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got, err := uc.ListTasks(context.Background(), binyamin, tt.filter)
			if err != nil {
				t.Fatalf("ListTasks: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tasks, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, title := range tt.want {
				if got[i].Title != title {
					t.Errorf("task %d = %q, want %q", i, got[i].Title, title)
				}
			}
		})
	}

	if _, err := uc.ListTasks(context.Background(), binyamin, "overdue"); !errors.Is(err, event.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestListDay_RepoError(t *testing.T) {
	r := newMockRepo()
	r.fail = true
	uc := newTestUseCase(t, r, nil)
	if _, err := uc.ListDay(context.Background(), binyamin, time.Now()); !errors.Is(err, errDB) {
		t.Errorf("expected repo error, got %v", err)
	}
}

func TestListRange(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)

	r.put(model.Item{ID: "a", DateKey: "2024-05-02", Title: "dentist", StartTime: "09:00", EndTime: "10:00"})
	r.put(model.Item{ID: "w", DateKey: "2024-04-26", Title: "weekly", Recurring: model.RecurrenceWeekly})
	r.holidays["2024-05-04"] = true
	r.holidays["2024-06-01"] = true

	days, err := uc.ListRange(context.Background(), binyamin, day(2024, 5, 1), day(2024, 5, 5))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(days) != 5 || days[0].DateKey != "2024-05-01" || days[4].DateKey != "2024-05-05" {
		t.Fatalf("unexpected days %+v", days)
	}
	if len(days[1].Items) != 1 || days[1].Items[0].Title != "dentist" {
		t.Errorf("2024-05-02 items = %+v", days[1].Items)
	}
	if len(days[2].Items) != 1 || days[2].Items[0].Title != "weekly" {
		t.Errorf("recurring item missing on 2024-05-03: %+v", days[2].Items)
	}
	if !days[3].Holiday || days[0].Holiday {
		t.Errorf("holiday flags wrong: %+v", days)
	}
}

func TestListRange_RecurringMatchesListDay(t *testing.T) {
	r := newMockRepo()
	uc := newTestUseCase(t, r, nil)
	ctx := context.Background()

	r.put(model.Item{ID: "d", DateKey: "2024-05-02", Title: "daily", StartTime: "07:00", EndTime: "07:30", Recurring: model.RecurrenceDaily})
	r.put(model.Item{ID: "m", DateKey: "2024-04-03", Title: "monthly", Recurring: model.RecurrenceMonthly})

	days, err := uc.ListRange(ctx, binyamin, day(2024, 5, 1), day(2024, 5, 4))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}

	want := map[string][]string{
		"2024-05-01": {},
		"2024-05-02": {"d"},
		"2024-05-03": {"d", "m"},
		"2024-05-04": {"d"},
	}
	for i, d := range days {
		var ids []string
		for _, it := range d.Items {
			ids = append(ids, it.ID)
		}
		if fmt.Sprint(ids) != fmt.Sprint(want[d.DateKey]) {
			t.Errorf("%s ids = %v, want %v", d.DateKey, ids, want[d.DateKey])
		}

		single, err := uc.ListDay(ctx, binyamin, day(2024, 5, 1+i))
		if err != nil {
			t.Fatalf("ListDay: %v", err)
		}
		if len(single.Items) != len(d.Items) {
			t.Errorf("%s: ListDay has %d items, ListRange %d", d.DateKey, len(single.Items), len(d.Items))
		}
	}
}

func TestListRange_Invalid(t *testing.T) {
	uc := newTestUseCase(t, newMockRepo(), nil)
	tests := []struct {
		name     string
		from, to time.Time
	}{
		{name: "reversed", from: day(2024, 5, 5), to: day(2024, 5, 1)},
		{name: "too long", from: day(2024, 1, 1), to: day(2024, 6, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.ListRange(context.Background(), binyamin, tt.from, tt.to); !errors.Is(err, event.ErrInvalidRange) {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}
}
