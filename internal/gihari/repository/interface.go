package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	// AppendLog records one command. Logs are write-only from the app.
	AppendLog(ctx context.Context, opt LogOptions) error
}
