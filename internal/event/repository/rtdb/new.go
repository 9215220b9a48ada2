package rtdb

import (
	"fmt"

	"bnapp/internal/event/repository"
	"bnapp/pkg/log"
	"bnapp/pkg/rtdb"
)

const (
	eventsRoot = "events"
	daysRoot   = "days"
)

type implRepository struct {
	db *rtdb.Client
	l  log.Logger
}

// New creates a realtime-database-backed Repository for the event domain.
// Items live at events/{dateKey}/{id} and day flags at days/{dateKey}.
func New(db *rtdb.Client, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/rtdb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/rtdb.%s", method)
}
