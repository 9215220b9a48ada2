package event

import (
	"context"
	"io"
	"time"

	"bnapp/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Item CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Item, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Item, error)
	Detail(ctx context.Context, sc model.Scope, dateKey, id string) (model.Item, error)
	Delete(ctx context.Context, sc model.Scope, dateKey, id string) error

	// Views
	ListDay(ctx context.Context, sc model.Scope, date time.Time) (DayOutput, error)
	// ListRange is ListDay for every day in [from, to], loading the store once.
	ListRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]DayOutput, error)
	ListTasks(ctx context.Context, sc model.Scope, filter TaskFilter) ([]model.Item, error)
	DailyLoad(ctx context.Context, sc model.Scope, date time.Time) (LoadOutput, error)
	LoadHistory(ctx context.Context, sc model.Scope, end time.Time, days int) (HistoryOutput, error)
	SuggestNow(ctx context.Context, sc model.Scope, date time.Time) (SuggestOutput, error)

	// Day flags
	AutoBlocks(ctx context.Context, date time.Time) ([]Block, error)
	ToggleHoliday(ctx context.Context, date time.Time) (bool, error)

	// Interchange
	ExportICS(ctx context.Context, sc model.Scope) (string, error)
	ImportICS(ctx context.Context, sc model.Scope, owner model.Owner, r io.Reader) (ImportOutput, error)
}
