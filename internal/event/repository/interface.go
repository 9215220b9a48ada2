package repository

import (
	"context"

	"bnapp/internal/model"
)

// Repository is the composed interface for the event store.
type Repository interface {
	ItemRepository
	DayRepository
}

// ItemRepository defines data access for calendar items. Items are addressed
// by their date key and id.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetItem returns a zero Item (ID == "") when not found.
	GetItem(ctx context.Context, dateKey, id string) (model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, dateKey, id string) error
	ListDay(ctx context.Context, dateKey string) ([]model.Item, error)
	ListAll(ctx context.Context) (map[string][]model.Item, error)
	ListRecurring(ctx context.Context) ([]model.Item, error)
}

// DayRepository stores per-day flags.
type DayRepository interface {
	GetHoliday(ctx context.Context, dateKey string) (bool, error)
	SetHoliday(ctx context.Context, dateKey string, holiday bool) error
	// ListHolidays returns the flagged days in [fromKey, toKey].
	ListHolidays(ctx context.Context, fromKey, toKey string) (map[string]bool, error)
}
