package usecase

import (
	"context"
	"math"
	"time"

	"bnapp/internal/dayplan"
	"bnapp/internal/event"
	"bnapp/internal/model"
)

// DailyLoad computes the viewer's busy minutes and free slots on date.
func (uc *implUseCase) DailyLoad(ctx context.Context, sc model.Scope, date time.Time) (event.LoadOutput, error) {
	items, err := uc.dayItems(ctx, date)
	if err != nil {
		return event.LoadOutput{}, err
	}

	summary := dayplan.ComputeDailyLoad(items, sc.Viewer, date)
	return event.LoadOutput{
		DateKey:    uc.dates.DateKey(date),
		Summary:    summary,
		Level:      dayplan.LoadLevel(summary.TotalBusyMinutes),
		FreeRanges: dayplan.FormatRanges(summary.FreeSlots),
	}, nil
}

// LoadHistory returns the viewer's busy hours for each of the days ending at
// end, and the work/free split of end itself.
func (uc *implUseCase) LoadHistory(ctx context.Context, sc model.Scope, end time.Time, days int) (event.HistoryOutput, error) {
	if days <= 0 {
		days = event.DefaultHistoryDays
	}

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.LoadHistory ListAll: %v", err)
		return event.HistoryOutput{}, err
	}
	var recurring []model.Item
	for _, items := range all {
		for _, it := range items {
			if it.IsRecurring() {
				recurring = append(recurring, it)
			}
		}
	}

	out := event.HistoryOutput{Days: make([]event.DayLoad, 0, days)}
	for _, dk := range uc.dates.DaysBack(end, days) {
		date, err := uc.dates.ParseDateKey(dk)
		if err != nil {
			continue
		}
		items := uc.itemsForDay(all[dk], recurring, date)
		summary := dayplan.ComputeDailyLoad(items, sc.Viewer, date)
		out.Days = append(out.Days, event.DayLoad{
			DateKey:   dk,
			BusyHours: float64(summary.TotalBusyMinutes) / 60,
		})
	}

	if n := len(out.Days); n > 0 {
		out.WorkHours = out.Days[n-1].BusyHours
	}
	out.FreeHours = math.Max(0, event.BusyDayHours-out.WorkHours)
	return out, nil
}

// SuggestNow ranks the tasks on date by urgency and picks the first.
func (uc *implUseCase) SuggestNow(ctx context.Context, sc model.Scope, date time.Time) (event.SuggestOutput, error) {
	items, err := uc.dayItems(ctx, date)
	if err != nil {
		return event.SuggestOutput{}, err
	}

	tasks := make([]model.Item, 0, len(items))
	for _, it := range items {
		if it.IsTask() {
			tasks = append(tasks, it)
		}
	}

	ranked := dayplan.RankByUrgency(tasks)
	top, found := dayplan.MostUrgent(tasks)
	return event.SuggestOutput{Found: found, Top: top, Ranked: ranked}, nil
}
