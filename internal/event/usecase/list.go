package usecase

import (
	"context"
	"sort"
	"time"

	"bnapp/internal/event"
	"bnapp/internal/model"
	"bnapp/pkg/recurrence"
)

// ListDay returns every participant's items on date, including recurring
// items that fall on it, together with the day's holiday flag.
func (uc *implUseCase) ListDay(ctx context.Context, sc model.Scope, date time.Time) (event.DayOutput, error) {
	dk := uc.dates.DateKey(date)

	items, err := uc.dayItems(ctx, date)
	if err != nil {
		return event.DayOutput{}, err
	}

	holiday, err := uc.repo.GetHoliday(ctx, dk)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListDay GetHoliday: %v", err)
		return event.DayOutput{}, err
	}

	return event.DayOutput{DateKey: dk, Holiday: holiday, Items: items}, nil
}

func (uc *implUseCase) ListRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]event.DayOutput, error) {
	from, to = uc.dates.StartOfDay(from), uc.dates.StartOfDay(to)
	if to.Before(from) || to.Sub(from) > event.MaxRangeDays*24*time.Hour {
		return nil, event.ErrInvalidRange
	}
	fromKey, toKey := uc.dates.DateKey(from), uc.dates.DateKey(to)

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRange ListAll: %v", err)
		return nil, err
	}
	holidays, err := uc.repo.ListHolidays(ctx, fromKey, toKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRange ListHolidays: %v", err)
		return nil, err
	}

	var recurring []model.Item
	for _, dk := range sortedKeys(all) {
		for _, it := range all[dk] {
			if it.IsRecurring() {
				recurring = append(recurring, it)
			}
		}
	}
	repeats := uc.occurrencesByDay(ctx, recurring, from, to)

	var out []event.DayOutput
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dk := uc.dates.DateKey(d)
		items := make([]model.Item, 0, len(all[dk])+len(repeats[dk]))
		items = append(items, all[dk]...)
		items = append(items, repeats[dk]...)
		sortDay(items)
		out = append(out, event.DayOutput{
			DateKey: dk,
			Holiday: holidays[dk],
			Items:   items,
		})
	}
	return out, nil
}

// occurrencesByDay expands recurring items over [from, to] and groups them by
// date key. The anchor day is skipped as the item is stored there.
func (uc *implUseCase) occurrencesByDay(ctx context.Context, recurring []model.Item, from, to time.Time) map[string][]model.Item {
	out := make(map[string][]model.Item)
	for _, it := range recurring {
		if !it.IsDated() {
			continue
		}
		anchor, err := uc.dates.ParseDateKey(it.DateKey)
		if err != nil {
			continue
		}
		days, err := recurrence.Between(anchor, string(it.Recurring), from, to)
		if err != nil {
			uc.l.Warnf(ctx, "uc.occurrencesByDay %s/%s: %v", it.DateKey, it.ID, err)
			continue
		}
		for _, d := range days {
			if dk := uc.dates.DateKey(d); dk != it.DateKey {
				out[dk] = append(out[dk], it)
			}
		}
	}
	return out
}

func sortedKeys(m map[string][]model.Item) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (uc *implUseCase) dayItems(ctx context.Context, date time.Time) ([]model.Item, error) {
	stored, err := uc.repo.ListDay(ctx, uc.dates.DateKey(date))
	if err != nil {
		uc.l.Errorf(ctx, "uc.dayItems ListDay: %v", err)
		return nil, err
	}
	recurring, err := uc.repo.ListRecurring(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.dayItems ListRecurring: %v", err)
		return nil, err
	}
	return uc.itemsForDay(stored, recurring, date), nil
}

// ListTasks returns the tasks selected by filter, undated first and then by date.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope, filter event.TaskFilter) ([]model.Item, error) {
	if filter == "" {
		filter = event.TaskFilterUndated
	}
	if !filter.Valid() {
		return nil, event.ErrInvalidFilter
	}

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks ListAll: %v", err)
		return nil, err
	}

	tasks := make([]model.Item, 0)
	for _, dk := range sortedKeys(all) {
		for _, it := range all[dk] {
			if it.IsTask() && matchesFilter(it, filter) {
				tasks = append(tasks, it)
			}
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.IsDated() != b.IsDated() {
			return !a.IsDated()
		}
		return a.DateKey < b.DateKey
	})
	return tasks, nil
}

func matchesFilter(it model.Item, filter event.TaskFilter) bool {
	switch filter {
	case event.TaskFilterUndated:
		return !it.IsDated()
	case event.TaskFilterDated:
		return it.IsDated() && !it.IsRecurring()
	case event.TaskFilterRecurring:
		return it.IsRecurring()
	}
	return true
}
