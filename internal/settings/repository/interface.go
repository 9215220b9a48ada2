package repository

import (
	"context"

	"bnapp/internal/settings"
)

//go:generate mockery --name Repository
type Repository interface {
	// Get returns the stored settings; fields never saved are left empty.
	Get(ctx context.Context) (settings.Settings, error)
	// Save replaces the stored settings. Nil coordinates clear the stored ones.
	Save(ctx context.Context, opt SaveOptions) error
}
