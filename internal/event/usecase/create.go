package usecase

import (
	"context"

	"bnapp/internal/event"
	repo "bnapp/internal/event/repository"
	"bnapp/internal/model"
)

// Create validates and stores a new item. The owner defaults to the viewer.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (model.Item, error) {
	dk, err := uc.normalizeDateKey(input.DateKey)
	if err != nil {
		return model.Item{}, err
	}

	item := model.Item{
		DateKey:         dk,
		Type:            input.Type,
		Owner:           input.Owner,
		Title:           input.Title,
		Description:     input.Description,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Duration:        input.Duration,
		Address:         input.Address,
		ReminderMinutes: input.ReminderMinutes,
		Recurring:       input.Recurring,
		Urgency:         input.Urgency,
	}
	if item.Owner == "" {
		item.Owner = sc.Viewer
	}
	if err := validateItem(&item); err != nil {
		return model.Item{}, err
	}

	item.MirrorID = uc.mirrorItem(ctx, item)

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{Item: item, CreatedAt: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return model.Item{}, err
	}
	return created, nil
}
