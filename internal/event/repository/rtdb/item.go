package rtdb

import (
	"context"
	"sort"

	repo "bnapp/internal/event/repository"
	"bnapp/internal/model"
	"bnapp/pkg/rtdb"
)

// CreateItem pushes a new item under its date key, or writes it at Item.ID when set.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	item := opt.Item
	if item.ID == "" {
		key, err := r.db.Push(ctx, rtdb.Join(eventsRoot, item.DateKey), item)
		if err != nil {
			r.l.Errorf(ctx, "%s Push: %v", r.dsn("CreateItem"), err)
			return model.Item{}, repo.ErrFailedToInsert
		}
		item.ID = key
		// The stored record carries its own key, matching what the web client writes.
		if err := r.db.Update(ctx, rtdb.Join(eventsRoot, item.DateKey, key), map[string]any{"_id": key}); err != nil {
			r.l.Errorf(ctx, "%s Update: %v", r.dsn("CreateItem"), err)
			return model.Item{}, repo.ErrFailedToInsert
		}
		return item, nil
	}

	if err := r.db.Set(ctx, rtdb.Join(eventsRoot, item.DateKey, item.ID), item); err != nil {
		r.l.Errorf(ctx, "%s Set: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetItem returns a zero Item when nothing is stored at dateKey/id.
func (r *implRepository) GetItem(ctx context.Context, dateKey, id string) (model.Item, error) {
	var item model.Item
	found, err := r.db.Get(ctx, rtdb.Join(eventsRoot, dateKey, id), &item)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	if !found {
		return model.Item{}, nil
	}
	return normalize(item, dateKey, id), nil
}

// UpdateItem overwrites the record at Item.DateKey/Item.ID.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	item := opt.Item
	if err := r.db.Set(ctx, rtdb.Join(eventsRoot, item.DateKey, item.ID), item); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes the record at dateKey/id.
func (r *implRepository) DeleteItem(ctx context.Context, dateKey, id string) error {
	if err := r.db.Remove(ctx, rtdb.Join(eventsRoot, dateKey, id)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListDay returns the items stored under dateKey ordered by id.
func (r *implRepository) ListDay(ctx context.Context, dateKey string) ([]model.Item, error) {
	var raw map[string]model.Item
	if _, err := r.db.Get(ctx, rtdb.Join(eventsRoot, dateKey), &raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDay"), err)
		return nil, repo.ErrFailedToList
	}
	return flatten(dateKey, raw), nil
}

// ListAll returns every item grouped by date key.
func (r *implRepository) ListAll(ctx context.Context) (map[string][]model.Item, error) {
	var raw map[string]map[string]model.Item
	if _, err := r.db.Get(ctx, eventsRoot, &raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAll"), err)
		return nil, repo.ErrFailedToList
	}
	out := make(map[string][]model.Item, len(raw))
	for dk, items := range raw {
		out[dk] = flatten(dk, items)
	}
	return out, nil
}

// ListRecurring scans all items; the REST API has no server-side filter
// without an index rule on every date node.
func (r *implRepository) ListRecurring(ctx context.Context) ([]model.Item, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(all))
	for dk := range all {
		keys = append(keys, dk)
	}
	sort.Strings(keys)

	var out []model.Item
	for _, dk := range keys {
		for _, it := range all[dk] {
			if it.IsRecurring() {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func flatten(dateKey string, raw map[string]model.Item) []model.Item {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, normalize(raw[id], dateKey, id))
	}
	return items
}

// normalize fills the fields older records may lack from their location in the tree.
func normalize(item model.Item, dateKey, id string) model.Item {
	if item.ID == "" {
		item.ID = id
	}
	if item.DateKey == "" {
		item.DateKey = dateKey
	}
	return item
}
