package rtdb

import (
	"fmt"

	"bnapp/internal/gihari/repository"
	"bnapp/pkg/log"
	"bnapp/pkg/rtdb"
)

const logsRoot = "gihariLogs"

type implRepository struct {
	db *rtdb.Client
	l  log.Logger
}

// New creates a realtime-database-backed command log under /gihariLogs.
func New(db *rtdb.Client, l log.Logger) repository.Repository {
	if db == nil {
		panic("gihari/repository/rtdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("gihari/repository/rtdb.%s", method)
}
