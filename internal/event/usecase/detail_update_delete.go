package usecase

import (
	"context"

	"bnapp/internal/event"
	repo "bnapp/internal/event/repository"
	"bnapp/internal/model"
)

// Detail returns the item at dateKey/id. Returns ErrItemNotFound when absent.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, dateKey, id string) (model.Item, error) {
	dk, err := uc.normalizeDateKey(dateKey)
	if err != nil {
		return model.Item{}, err
	}
	item, err := uc.repo.GetItem(ctx, dk, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return model.Item{}, err
	}
	if item.ID == "" {
		return model.Item{}, event.ErrItemNotFound
	}
	return item, nil
}

// Update applies a partial update. Changing the date key moves the item,
// keeping its id.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input event.UpdateInput) (model.Item, error) {
	existing, err := uc.Detail(ctx, sc, input.DateKey, input.ID)
	if err != nil {
		return model.Item{}, err
	}

	item := existing
	if input.NewDateKey != nil {
		dk, err := uc.normalizeDateKey(*input.NewDateKey)
		if err != nil {
			return model.Item{}, err
		}
		item.DateKey = dk
	}
	applyPatch(&item, input)
	if err := validateItem(&item); err != nil {
		return model.Item{}, err
	}

	remirror := uc.mirror != nil && mirrorChanged(existing, item)
	if remirror {
		item.MirrorID = uc.mirrorItem(ctx, item)
	}

	saved, err := uc.saveItem(ctx, existing, item)
	if err != nil {
		if remirror {
			uc.unmirrorItem(ctx, item)
		}
		return model.Item{}, err
	}
	if remirror {
		uc.unmirrorItem(ctx, existing)
	}
	return saved, nil
}

// saveItem writes item over existing. A date change writes the new record
// first and only then removes the old one, so a failed move keeps the old record.
func (uc *implUseCase) saveItem(ctx context.Context, existing, item model.Item) (model.Item, error) {
	if item.DateKey == existing.DateKey {
		updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: item})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
			return model.Item{}, err
		}
		if updated.ID == "" {
			return model.Item{}, event.ErrItemNotFound
		}
		return updated, nil
	}

	moved, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{Item: item, CreatedAt: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update CreateItem: %v", err)
		return model.Item{}, err
	}
	if err := uc.repo.DeleteItem(ctx, existing.DateKey, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Update DeleteItem: %v", err)
		if rbErr := uc.repo.DeleteItem(ctx, moved.DateKey, moved.ID); rbErr != nil {
			uc.l.Errorf(ctx, "uc.Update rollback DeleteItem: %v", rbErr)
		}
		return model.Item{}, err
	}
	return moved, nil
}

// Delete removes the item and its calendar mirror. Returns ErrItemNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, dateKey, id string) error {
	existing, err := uc.Detail(ctx, sc, dateKey, id)
	if err != nil {
		return err
	}
	uc.unmirrorItem(ctx, existing)
	if err := uc.repo.DeleteItem(ctx, existing.DateKey, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

func applyPatch(item *model.Item, in event.UpdateInput) {
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.Owner != nil {
		item.Owner = *in.Owner
	}
	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.StartTime != nil {
		item.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		item.EndTime = *in.EndTime
	}
	if in.Duration != nil {
		item.Duration = in.Duration
	}
	if in.Address != nil {
		item.Address = *in.Address
	}
	if in.ReminderMinutes != nil {
		item.ReminderMinutes = in.ReminderMinutes
	}
	if in.Recurring != nil {
		item.Recurring = *in.Recurring
	}
	if in.Urgency != nil {
		item.Urgency = *in.Urgency
	}
}
