package sqlite

import (
	"context"
	"database/sql"
	"errors"

	repo "bnapp/internal/event/repository"
)

// GetHoliday reports the holiday flag of dateKey; an absent row is false.
func (r *implRepository) GetHoliday(ctx context.Context, dateKey string) (bool, error) {
	const query = `SELECT holiday FROM day_flags WHERE date_key = ?`
	var holiday bool
	err := r.db.QueryRowContext(ctx, query, dateKey).Scan(&holiday)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetHoliday"), err)
		return false, repo.ErrFailedToGet
	}
	return holiday, nil
}

// SetHoliday upserts the flag of dateKey.
func (r *implRepository) SetHoliday(ctx context.Context, dateKey string, holiday bool) error {
	const query = `
		INSERT INTO day_flags (date_key, holiday) VALUES (?, ?)
		ON CONFLICT(date_key) DO UPDATE SET holiday = excluded.holiday`
	if _, err := r.db.ExecContext(ctx, query, dateKey, holiday); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetHoliday"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListHolidays returns the flagged days in [fromKey, toKey].
func (r *implRepository) ListHolidays(ctx context.Context, fromKey, toKey string) (map[string]bool, error) {
	const query = `SELECT date_key FROM day_flags WHERE holiday = 1 AND date_key BETWEEN ? AND ?`
	rows, err := r.db.QueryContext(ctx, query, fromKey, toKey)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHolidays"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var dk string
		if err := rows.Scan(&dk); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListHolidays"), err)
			return nil, repo.ErrFailedToList
		}
		out[dk] = true
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHolidays"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
