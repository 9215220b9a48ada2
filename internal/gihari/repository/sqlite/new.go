package sqlite

import (
	"database/sql"
	"fmt"

	"bnapp/internal/gihari/repository"
	"bnapp/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed command log over the assistant_logs table.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("gihari/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("gihari/repository/sqlite.%s", method)
}
