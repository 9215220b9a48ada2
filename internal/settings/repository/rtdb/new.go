package rtdb

import (
	"fmt"

	"bnapp/internal/settings/repository"
	"bnapp/pkg/log"
	"bnapp/pkg/rtdb"
)

const settingsRoot = "settings"

type implRepository struct {
	db *rtdb.Client
	l  log.Logger
}

// New creates a realtime-database-backed settings Repository stored under /settings.
func New(db *rtdb.Client, l log.Logger) repository.Repository {
	if db == nil {
		panic("settings/repository/rtdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("settings/repository/rtdb.%s", method)
}
