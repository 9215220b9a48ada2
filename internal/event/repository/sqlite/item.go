package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	repo "bnapp/internal/event/repository"
	"bnapp/internal/model"
	"bnapp/pkg/sqlitedb"
)

// CreateItem inserts a new row. A missing id is generated.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO events (id, date_key, type, owner, title, description, start_time, end_time,
			duration, address, reminder_minutes, recurring, urgency, mirror_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	item := opt.Item
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.DateKey, item.Type, item.Owner, item.Title, item.Description,
		item.StartTime, item.EndTime, sqlitedb.NullInt(item.Duration), item.Address,
		sqlitedb.NullInt(item.ReminderMinutes), item.Recurring, item.Urgency, item.MirrorID,
		opt.CreatedAt.UnixMilli(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetItem returns a zero Item when no row matches.
func (r *implRepository) GetItem(ctx context.Context, dateKey, id string) (model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM events WHERE date_key = ? AND id = ? LIMIT 1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, dateKey, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// UpdateItem rewrites every column of the row at Item.DateKey/Item.ID.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE events
		SET type = ?, owner = ?, title = ?, description = ?, start_time = ?, end_time = ?,
			duration = ?, address = ?, reminder_minutes = ?, recurring = ?, urgency = ?, mirror_id = ?
		WHERE date_key = ? AND id = ?`

	item := opt.Item
	res, err := r.db.ExecContext(ctx, query,
		item.Type, item.Owner, item.Title, item.Description, item.StartTime, item.EndTime,
		sqlitedb.NullInt(item.Duration), item.Address, sqlitedb.NullInt(item.ReminderMinutes),
		item.Recurring, item.Urgency, item.MirrorID,
		item.DateKey, item.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Item{}, nil
	}
	return item, nil
}

// DeleteItem removes the row at dateKey/id.
func (r *implRepository) DeleteItem(ctx context.Context, dateKey, id string) error {
	const query = `DELETE FROM events WHERE date_key = ? AND id = ?`
	if _, err := r.db.ExecContext(ctx, query, dateKey, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListDay returns the rows stored under dateKey in insertion order.
func (r *implRepository) ListDay(ctx context.Context, dateKey string) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM events WHERE date_key = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, dateKey)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDay"), err)
		return nil, repo.ErrFailedToList
	}
	items, err := scanItems(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDay"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// ListAll returns every row grouped by date key.
func (r *implRepository) ListAll(ctx context.Context) (map[string][]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM events ORDER BY date_key, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAll"), err)
		return nil, repo.ErrFailedToList
	}
	items, err := scanItems(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAll"), err)
		return nil, repo.ErrFailedToList
	}

	out := make(map[string][]model.Item)
	for _, it := range items {
		out[it.DateKey] = append(out[it.DateKey], it)
	}
	return out, nil
}

// ListRecurring returns rows whose recurring value is set.
func (r *implRepository) ListRecurring(ctx context.Context) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM events
		WHERE recurring <> '' AND recurring <> 'none' ORDER BY date_key, created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecurring"), err)
		return nil, repo.ErrFailedToList
	}
	items, err := scanItems(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRecurring"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}
