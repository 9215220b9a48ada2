package usecase

import (
	"context"

	"bnapp/internal/model"
	"bnapp/pkg/gcalendar"
)

// mirrorItem copies a dated, timed item to the external calendar and returns
// the remote id. Failures are logged and leave the item unmirrored.
func (uc *implUseCase) mirrorItem(ctx context.Context, item model.Item) string {
	if uc.mirror == nil || !item.IsDated() || !item.HasTime() {
		return ""
	}
	day, err := uc.dates.ParseDateKey(item.DateKey)
	if err != nil {
		return ""
	}
	start, ok := wallTime(day, item.StartTime)
	if !ok {
		return ""
	}
	end, ok := wallTime(day, item.EndTime)
	if !ok || end.Before(start) {
		return ""
	}

	ev, err := uc.mirror.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     item.Title,
		Description: item.Description,
		Location:    item.Address,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirrorItem CreateEvent: %v", err)
		return ""
	}
	return ev.ID
}

func (uc *implUseCase) unmirrorItem(ctx context.Context, item model.Item) {
	if uc.mirror == nil || item.MirrorID == "" {
		return
	}
	if err := uc.mirror.DeleteEvent(ctx, item.MirrorID); err != nil {
		uc.l.Warnf(ctx, "uc.unmirrorItem DeleteEvent: %v", err)
	}
}

func mirrorChanged(before, after model.Item) bool {
	return before.DateKey != after.DateKey ||
		before.StartTime != after.StartTime ||
		before.EndTime != after.EndTime ||
		before.Title != after.Title ||
		before.Description != after.Description ||
		before.Address != after.Address
}
