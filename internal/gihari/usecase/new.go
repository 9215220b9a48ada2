package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"bnapp/internal/event"
	"bnapp/internal/gihari/repository"
	"bnapp/internal/model"
	"bnapp/pkg/datemath"
	"bnapp/pkg/log"
)

// Events is the part of event.UseCase the assistant drives.
type Events interface {
	Create(ctx context.Context, sc model.Scope, input event.CreateInput) (model.Item, error)
	DailyLoad(ctx context.Context, sc model.Scope, date time.Time) (event.LoadOutput, error)
	SuggestNow(ctx context.Context, sc model.Scope, date time.Time) (event.SuggestOutput, error)
}

// Config toggles the assistant's personality.
type Config struct {
	Humor bool
}

type implUseCase struct {
	l      log.Logger
	events Events
	logs   repository.Repository
	dates  *datemath.Parser
	humor  bool
	now    func() time.Time
	pick   func(n int) int
}

// New creates the assistant UseCase. logs may be nil to disable command logging.
func New(l log.Logger, events Events, logs repository.Repository, dates *datemath.Parser, cfg Config) *implUseCase {
	return &implUseCase{
		l:      l,
		events: events,
		logs:   logs,
		dates:  dates,
		humor:  cfg.Humor,
		now:    time.Now,
		pick:   rand.IntN,
	}
}
