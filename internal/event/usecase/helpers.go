package usecase

import (
	"sort"
	"strings"
	"time"

	"bnapp/internal/dayplan"
	"bnapp/internal/event"
	"bnapp/internal/model"
	"bnapp/pkg/recurrence"
)

// normalizeDateKey trims key, maps "" to the undated key and checks the layout of dated keys.
func (uc *implUseCase) normalizeDateKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || key == model.UndatedKey {
		return model.UndatedKey, nil
	}
	if _, err := uc.dates.ParseDateKey(key); err != nil {
		return "", event.ErrInvalidDateKey
	}
	return key, nil
}

// validateItem applies defaults to item and checks every enumerated field.
func validateItem(item *model.Item) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return event.ErrTitleRequired
	}

	owner, ok := model.ParseOwner(string(item.Owner))
	if !ok {
		return event.ErrInvalidOwner
	}
	item.Owner = owner

	if item.Type == "" {
		item.Type = model.ItemTypeEvent
	}
	if item.Type != model.ItemTypeEvent && item.Type != model.ItemTypeTask {
		return event.ErrInvalidType
	}

	item.StartTime = strings.TrimSpace(item.StartTime)
	item.EndTime = strings.TrimSpace(item.EndTime)
	if (item.StartTime == "") != (item.EndTime == "") {
		return event.ErrIncompleteTime
	}
	if item.StartTime != "" {
		start, err := dayplan.ParseClock(item.StartTime)
		if err != nil {
			return event.ErrInvalidTime
		}
		end, err := dayplan.ParseClock(item.EndTime)
		if err != nil {
			return event.ErrInvalidTime
		}
		item.StartTime, item.EndTime = start.String(), end.String()
	}

	if item.Urgency == "" {
		item.Urgency = model.UrgencyNone
	}
	if !item.Urgency.Valid() {
		return event.ErrInvalidUrgency
	}
	if item.Recurring == "" {
		item.Recurring = model.RecurrenceNone
	}
	if !item.Recurring.Valid() {
		return event.ErrInvalidRecurring
	}
	return nil
}

// itemsForDay merges the items stored on date with the recurring items anchored
// before it whose rule falls on date.
func (uc *implUseCase) itemsForDay(stored, recurring []model.Item, date time.Time) []model.Item {
	dk := uc.dates.DateKey(date)
	out := make([]model.Item, 0, len(stored))
	out = append(out, stored...)

	for _, it := range recurring {
		if !it.IsDated() || it.DateKey == dk {
			continue
		}
		anchor, err := uc.dates.ParseDateKey(it.DateKey)
		if err != nil {
			continue
		}
		ok, err := recurrence.OccursOn(anchor, string(it.Recurring), date)
		if err != nil || !ok {
			continue
		}
		out = append(out, it)
	}

	sortDay(out)
	return out
}

// sortDay puts timed items first ordered by start time; untimed items keep their order.
func sortDay(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].StartTime, items[j].StartTime
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		return a < b
	})
}

// visibleTo reports whether item belongs to viewer's calendar.
func visibleTo(item model.Item, viewer model.Owner) bool {
	return item.Owner == "" || item.Owner == viewer || item.Owner == model.OwnerShared
}

// wallTime places an HH:MM clock on the day of date.
func wallTime(date time.Time, clock string) (time.Time, bool) {
	c, err := dayplan.ParseClock(clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location()), true
}

func durationMinutes(start, end string) *int {
	s, err := dayplan.ParseClock(start)
	if err != nil {
		return nil
	}
	e, err := dayplan.ParseClock(end)
	if err != nil || e.Minutes() < s.Minutes() {
		return nil
	}
	d := e.Minutes() - s.Minutes()
	return &d
}
