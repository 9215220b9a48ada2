package usecase

import (
	"context"
	"strings"

	"bnapp/internal/shopping"
	repo "bnapp/internal/shopping/repository"
)

// Add appends a trimmed, non-empty line to the list.
func (uc *implUseCase) Add(ctx context.Context, input shopping.AddInput) (shopping.Item, error) {
	list, err := normalizeList(input.List)
	if err != nil {
		return shopping.Item{}, err
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return shopping.Item{}, shopping.ErrTextRequired
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{List: list, Text: text, CreatedAt: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateItem: %v", err)
		return shopping.Item{}, err
	}
	return item, nil
}

// List returns the lines of list in creation order.
func (uc *implUseCase) List(ctx context.Context, list string) ([]shopping.Item, error) {
	list, err := normalizeList(list)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListItems(ctx, list)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return nil, err
	}
	return items, nil
}

// Toggle flips the completed flag of a line.
func (uc *implUseCase) Toggle(ctx context.Context, list, id string) (shopping.Item, error) {
	item, err := uc.get(ctx, list, id)
	if err != nil {
		return shopping.Item{}, err
	}
	item.Completed = !item.Completed
	if err := uc.repo.SetCompleted(ctx, item.List, item.ID, item.Completed); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle SetCompleted: %v", err)
		return shopping.Item{}, err
	}
	return item, nil
}

// Delete removes a line. Returns ErrItemNotFound when absent.
func (uc *implUseCase) Delete(ctx context.Context, list, id string) error {
	item, err := uc.get(ctx, list, id)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteItem(ctx, item.List, item.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) get(ctx context.Context, list, id string) (shopping.Item, error) {
	list, err := normalizeList(list)
	if err != nil {
		return shopping.Item{}, err
	}
	item, err := uc.repo.GetItem(ctx, list, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.get GetItem: %v", err)
		return shopping.Item{}, err
	}
	if item.ID == "" {
		return shopping.Item{}, shopping.ErrItemNotFound
	}
	return item, nil
}

// normalizeList maps "" to the default list and rejects names that cannot be
// used as a database key.
func normalizeList(list string) (string, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return shopping.DefaultList, nil
	}
	if strings.ContainsAny(list, "/.#$[]") {
		return "", shopping.ErrInvalidList
	}
	return list, nil
}
