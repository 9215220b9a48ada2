package sqlite

import (
	"context"
	"strconv"

	"bnapp/internal/settings"
	repo "bnapp/internal/settings/repository"
)

const (
	keyCity = "city"
	keyLat  = "cityLat"
	keyLon  = "cityLon"
	keyTz   = "cityTz"
)

func (r *implRepository) Get(ctx context.Context) (settings.Settings, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return settings.Settings{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	var s settings.Settings
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("Get"), err)
			return settings.Settings{}, repo.ErrFailedToGet
		}
		switch key {
		case keyCity:
			s.City = value
		case keyLat:
			s.Lat = parseFloat(value)
		case keyLon:
			s.Lon = parseFloat(value)
		case keyTz:
			s.Timezone = value
		}
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return settings.Settings{}, repo.ErrFailedToGet
	}
	return s, nil
}

// Save writes all keys in one transaction; empty values delete their key.
func (r *implRepository) Save(ctx context.Context, opt repo.SaveOptions) error {
	values := map[string]string{keyCity: opt.City, keyTz: opt.Timezone}
	if opt.Lat != nil && opt.Lon != nil {
		values[keyLat] = strconv.FormatFloat(*opt.Lat, 'f', -1, 64)
		values[keyLon] = strconv.FormatFloat(*opt.Lon, 'f', -1, 64)
	} else {
		values[keyLat] = ""
		values[keyLon] = ""
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	defer tx.Rollback()

	for key, value := range values {
		if value == "" {
			_, err = tx.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
		} else {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
				key, value)
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %s: %v", r.dsn("Save"), key, err)
			return repo.ErrFailedToSave
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
