package repository

import (
	"context"

	"bnapp/internal/shopping"
)

// Repository is the data store of shopping lists.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (shopping.Item, error)
	// GetItem returns a zero Item (ID == "") when not found.
	GetItem(ctx context.Context, list, id string) (shopping.Item, error)
	SetCompleted(ctx context.Context, list, id string, completed bool) error
	DeleteItem(ctx context.Context, list, id string) error
	ListItems(ctx context.Context, list string) ([]shopping.Item, error)
}
