package sqlite

import (
	"database/sql"
	"fmt"

	"bnapp/internal/shopping/repository"
	"bnapp/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed shopping Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("shopping/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("shopping/repository/sqlite.%s", method)
}
