package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"bnapp/internal/shopping"
	repo "bnapp/internal/shopping/repository"
)

// CreateItem inserts a new line with a generated id.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (shopping.Item, error) {
	const query = `INSERT INTO shopping (id, list, text, completed, created_at) VALUES (?, ?, ?, 0, ?)`

	item := shopping.Item{ID: uuid.NewString(), List: opt.List, Text: opt.Text, CreatedAt: opt.CreatedAt}
	if _, err := r.db.ExecContext(ctx, query, item.ID, item.List, item.Text, opt.CreatedAt.UnixMilli()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return shopping.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetItem returns a zero Item when no row matches.
func (r *implRepository) GetItem(ctx context.Context, list, id string) (shopping.Item, error) {
	const query = `SELECT id, list, text, completed, created_at FROM shopping WHERE list = ? AND id = ?`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, list, id))
	if errors.Is(err, sql.ErrNoRows) {
		return shopping.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return shopping.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// SetCompleted updates the completed flag.
func (r *implRepository) SetCompleted(ctx context.Context, list, id string, completed bool) error {
	const query = `UPDATE shopping SET completed = ? WHERE list = ? AND id = ?`
	if _, err := r.db.ExecContext(ctx, query, completed, list, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCompleted"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteItem removes the line.
func (r *implRepository) DeleteItem(ctx context.Context, list, id string) error {
	const query = `DELETE FROM shopping WHERE list = ? AND id = ?`
	if _, err := r.db.ExecContext(ctx, query, list, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListItems returns the lines of list in creation order.
func (r *implRepository) ListItems(ctx context.Context, list string) ([]shopping.Item, error) {
	const query = `SELECT id, list, text, completed, created_at FROM shopping WHERE list = ? ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, list)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]shopping.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (shopping.Item, error) {
	var (
		item    shopping.Item
		created int64
	)
	if err := s.Scan(&item.ID, &item.List, &item.Text, &item.Completed, &created); err != nil {
		return shopping.Item{}, err
	}
	item.CreatedAt = time.UnixMilli(created)
	return item, nil
}
