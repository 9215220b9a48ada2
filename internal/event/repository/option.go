package repository

import (
	"time"

	"bnapp/internal/model"
)

// CreateItemOptions holds a new item. When Item.ID is set the store keeps it,
// otherwise a key is generated.
type CreateItemOptions struct {
	Item      model.Item
	CreatedAt time.Time
}

// UpdateItemOptions replaces the stored item at Item.DateKey/Item.ID.
type UpdateItemOptions struct {
	Item model.Item
}
