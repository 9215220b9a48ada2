package repository

import (
	"time"

	"bnapp/internal/model"
)

// LogOptions is one command log entry.
type LogOptions struct {
	At     time.Time
	Owner  model.Owner
	Source string
	Text   string
	Intent string
	Reply  string
}
