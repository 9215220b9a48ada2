package rtdb

import (
	"context"

	repo "bnapp/internal/event/repository"
	"bnapp/pkg/rtdb"
)

// GetHoliday reads days/{dateKey}/holiday; an absent flag is false.
func (r *implRepository) GetHoliday(ctx context.Context, dateKey string) (bool, error) {
	var holiday bool
	if _, err := r.db.Get(ctx, rtdb.Join(daysRoot, dateKey, "holiday"), &holiday); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetHoliday"), err)
		return false, repo.ErrFailedToGet
	}
	return holiday, nil
}

// SetHoliday writes the flag; clearing it removes the node.
func (r *implRepository) SetHoliday(ctx context.Context, dateKey string, holiday bool) error {
	path := rtdb.Join(daysRoot, dateKey, "holiday")
	var err error
	if holiday {
		err = r.db.Set(ctx, path, true)
	} else {
		err = r.db.Remove(ctx, path)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetHoliday"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListHolidays reads the days node and keeps flagged keys inside the range.
func (r *implRepository) ListHolidays(ctx context.Context, fromKey, toKey string) (map[string]bool, error) {
	var raw map[string]struct {
		Holiday bool `json:"holiday"`
	}
	if _, err := r.db.Get(ctx, daysRoot, &raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHolidays"), err)
		return nil, repo.ErrFailedToList
	}
	out := make(map[string]bool)
	for dk, flags := range raw {
		if flags.Holiday && dk >= fromKey && dk <= toKey {
			out[dk] = true
		}
	}
	return out, nil
}
