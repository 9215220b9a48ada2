package usecase

import (
	"context"
	"time"

	"bnapp/internal/event"
)

// AutoBlocks returns the fixed routine of date. Sunday to Thursday are work
// days; a day flagged as holiday has a single block.
func (uc *implUseCase) AutoBlocks(ctx context.Context, date time.Time) ([]event.Block, error) {
	dk := uc.dates.DateKey(date)
	holiday, err := uc.repo.GetHoliday(ctx, dk)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AutoBlocks GetHoliday: %v", err)
		return nil, err
	}
	if holiday {
		return []event.Block{{Label: "יום חופש", Range: "ללא עבודה/ארוחות", Type: event.BlockHoliday}}, nil
	}

	blocks := []event.Block{{Label: "שינה", Range: "00:00–08:00", Type: event.BlockSleep}}
	if wd := date.In(uc.dates.Location()).Weekday(); wd >= time.Sunday && wd <= time.Thursday {
		blocks = append(blocks,
			event.Block{Label: "עבודה", Range: "08:00–17:00", Type: event.BlockWork},
			event.Block{Label: "אוכל + מקלחת", Range: "17:00–18:30", Type: event.BlockMeal},
		)
	}
	return blocks, nil
}

// ToggleHoliday flips the holiday flag of date and returns the new value.
func (uc *implUseCase) ToggleHoliday(ctx context.Context, date time.Time) (bool, error) {
	dk := uc.dates.DateKey(date)
	holiday, err := uc.repo.GetHoliday(ctx, dk)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleHoliday GetHoliday: %v", err)
		return false, err
	}
	if err := uc.repo.SetHoliday(ctx, dk, !holiday); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleHoliday SetHoliday: %v", err)
		return false, err
	}
	return !holiday, nil
}
