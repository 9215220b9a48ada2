package rtdb

import (
	"context"
	"sort"
	"time"

	"bnapp/internal/shopping"
	repo "bnapp/internal/shopping/repository"
	"bnapp/pkg/rtdb"
)

// record is the stored shape, shared with the web client.
type record struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

func (rec record) toItem(list, id string) shopping.Item {
	item := shopping.Item{ID: id, List: list, Text: rec.Text, Completed: rec.Completed}
	if rec.CreatedAt > 0 {
		item.CreatedAt = time.UnixMilli(rec.CreatedAt)
	}
	return item
}

// CreateItem pushes a new line under the list.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (shopping.Item, error) {
	rec := record{Text: opt.Text, CreatedAt: opt.CreatedAt.UnixMilli()}
	id, err := r.db.Push(ctx, rtdb.Join(shoppingRoot, opt.List), rec)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return shopping.Item{}, repo.ErrFailedToInsert
	}
	return rec.toItem(opt.List, id), nil
}

// GetItem returns a zero Item when the line is absent.
func (r *implRepository) GetItem(ctx context.Context, list, id string) (shopping.Item, error) {
	var rec record
	found, err := r.db.Get(ctx, rtdb.Join(shoppingRoot, list, id), &rec)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return shopping.Item{}, repo.ErrFailedToGet
	}
	if !found {
		return shopping.Item{}, nil
	}
	return rec.toItem(list, id), nil
}

// SetCompleted patches the completed flag only.
func (r *implRepository) SetCompleted(ctx context.Context, list, id string, completed bool) error {
	if err := r.db.Update(ctx, rtdb.Join(shoppingRoot, list, id), map[string]any{"completed": completed}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCompleted"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteItem removes the line.
func (r *implRepository) DeleteItem(ctx context.Context, list, id string) error {
	if err := r.db.Remove(ctx, rtdb.Join(shoppingRoot, list, id)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListItems returns the lines of list in push-key order, which is creation order.
func (r *implRepository) ListItems(ctx context.Context, list string) ([]shopping.Item, error) {
	var raw map[string]record
	if _, err := r.db.Get(ctx, rtdb.Join(shoppingRoot, list), &raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]shopping.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, raw[id].toItem(list, id))
	}
	return items, nil
}
