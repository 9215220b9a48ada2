package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"

	"bnapp/internal/event"
	"bnapp/internal/model"
	"bnapp/pkg/icalendar"
	"bnapp/pkg/recurrence"
)

const calendarName = "BNAPP"

// ExportICS renders the viewer's dated items as an iCalendar document.
// Timed items become timed events, the rest all-day events.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope) (string, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS ListAll: %v", err)
		return "", err
	}

	keys := make([]string, 0, len(all))
	for dk := range all {
		keys = append(keys, dk)
	}
	sort.Strings(keys)

	var events []icalendar.Event
	for _, dk := range keys {
		for _, it := range all[dk] {
			if !it.IsDated() || !visibleTo(it, sc.Viewer) {
				continue
			}
			ev, ok := uc.toICalEvent(it)
			if ok {
				events = append(events, ev)
			}
		}
	}

	return icalendar.Encode(calendarName, events, uc.now()), nil
}

func (uc *implUseCase) toICalEvent(it model.Item) (icalendar.Event, bool) {
	day, err := uc.dates.ParseDateKey(it.DateKey)
	if err != nil {
		return icalendar.Event{}, false
	}
	ev := icalendar.Event{
		UID:         fmt.Sprintf("%s-%s@bnapp", it.DateKey, it.ID),
		Summary:     it.Title,
		Description: it.Description,
		Location:    it.Address,
		RRule:       recurrence.RRule(string(it.Recurring)),
	}

	start, okStart := wallTime(day, it.StartTime)
	end, okEnd := wallTime(day, it.EndTime)
	if okStart && okEnd && !end.Before(start) {
		ev.Start, ev.End = start, end
		return ev, true
	}

	ev.AllDay = true
	ev.Start, ev.End = day, day.AddDate(0, 0, 1)
	return ev, true
}

// ImportICS creates one item per VEVENT of r, owned by owner (the viewer when empty).
// Events without a summary are skipped.
func (uc *implUseCase) ImportICS(ctx context.Context, sc model.Scope, owner model.Owner, r io.Reader) (event.ImportOutput, error) {
	if owner == "" {
		owner = sc.Viewer
	}
	if _, ok := model.ParseOwner(string(owner)); !ok {
		return event.ImportOutput{}, event.ErrInvalidOwner
	}

	events, err := icalendar.Decode(r, uc.dates.Location())
	if err != nil {
		uc.l.Warnf(ctx, "uc.ImportICS Decode: %v", err)
		return event.ImportOutput{}, event.ErrInvalidCalendar
	}

	out := event.ImportOutput{Created: make([]model.Item, 0, len(events))}
	for _, ev := range events {
		input, ok := uc.fromICalEvent(ev, owner)
		if !ok {
			out.Skipped++
			continue
		}
		item, err := uc.Create(ctx, sc, input)
		if err != nil {
			return out, err
		}
		out.Created = append(out.Created, item)
	}
	return out, nil
}

func (uc *implUseCase) fromICalEvent(ev icalendar.Event, owner model.Owner) (event.CreateInput, bool) {
	if ev.Summary == "" || ev.Start.IsZero() {
		return event.CreateInput{}, false
	}

	input := event.CreateInput{
		Type:        model.ItemTypeEvent,
		Owner:       owner,
		Title:       ev.Summary,
		Description: ev.Description,
		Address:     ev.Location,
		DateKey:     uc.dates.DateKey(ev.Start),
		Recurring:   model.Recurrence(recurrence.FromRRule(ev.RRule)),
		Urgency:     model.UrgencyNone,
	}
	if ev.AllDay {
		return input, true
	}

	start := ev.Start.In(uc.dates.Location())
	end := ev.End.In(uc.dates.Location())
	input.StartTime = start.Format("15:04")
	switch {
	case ev.End.IsZero() || end.Before(start):
		input.EndTime = input.StartTime
	case uc.dates.DateKey(end) != input.DateKey:
		input.EndTime = "23:59"
	default:
		input.EndTime = end.Format("15:04")
	}
	input.Duration = durationMinutes(input.StartTime, input.EndTime)
	return input, true
}
