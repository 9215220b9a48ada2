package rtdb

import (
	"context"

	repo "bnapp/internal/gihari/repository"
)

// record keeps the {text, ts} shape of the web client and adds context fields.
type record struct {
	Text   string `json:"text"`
	TS     int64  `json:"ts"`
	Owner  string `json:"owner,omitempty"`
	Source string `json:"source,omitempty"`
	Intent string `json:"intent,omitempty"`
	Reply  string `json:"reply,omitempty"`
}

func (r *implRepository) AppendLog(ctx context.Context, opt repo.LogOptions) error {
	rec := record{
		Text:   opt.Text,
		TS:     opt.At.UnixMilli(),
		Owner:  string(opt.Owner),
		Source: opt.Source,
		Intent: opt.Intent,
		Reply:  opt.Reply,
	}
	if _, err := r.db.Push(ctx, logsRoot, rec); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendLog"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
