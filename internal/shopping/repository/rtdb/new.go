package rtdb

import (
	"fmt"

	"bnapp/internal/shopping/repository"
	"bnapp/pkg/log"
	"bnapp/pkg/rtdb"
)

const shoppingRoot = "shopping"

type implRepository struct {
	db *rtdb.Client
	l  log.Logger
}

// New creates a realtime-database-backed shopping Repository. Lines live at
// shopping/{list}/{id}.
func New(db *rtdb.Client, l log.Logger) repository.Repository {
	if db == nil {
		panic("shopping/repository/rtdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("shopping/repository/rtdb.%s", method)
}
