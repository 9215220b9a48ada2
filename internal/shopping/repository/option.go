package repository

import "time"

// CreateItemOptions holds a new list line.
type CreateItemOptions struct {
	List      string
	Text      string
	CreatedAt time.Time
}
