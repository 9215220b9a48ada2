package sqlite

import (
	"context"

	repo "bnapp/internal/gihari/repository"
)

func (r *implRepository) AppendLog(ctx context.Context, opt repo.LogOptions) error {
	const query = `INSERT INTO assistant_logs (at, owner, source, text, intent, reply) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		opt.At.UnixMilli(), string(opt.Owner), opt.Source, opt.Text, opt.Intent, opt.Reply); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendLog"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
