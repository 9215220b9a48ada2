package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"bnapp/internal/event"
	"bnapp/internal/model"
	"bnapp/internal/reminder"
	"bnapp/pkg/datemath"
	pkgLog "bnapp/pkg/log"
	"bnapp/pkg/notify"
)

// Events is the part of the event use case reminders read from.
type Events interface {
	ListDay(ctx context.Context, sc model.Scope, date time.Time) (event.DayOutput, error)
	DailyLoad(ctx context.Context, sc model.Scope, date time.Time) (event.LoadOutput, error)
}

type Config struct {
	Window time.Duration
}

type implUseCase struct {
	l        pkgLog.Logger
	events   Events
	notifier notify.Notifier
	dates    *datemath.Parser
	window   time.Duration
	sent     *expirable.LRU[string, struct{}]
	retry    *expirable.LRU[string, notify.Message]
}

var _ reminder.UseCase = (*implUseCase)(nil)

// New creates a new reminder use case.
func New(l pkgLog.Logger, events Events, notifier notify.Notifier, dates *datemath.Parser, cfg Config) *implUseCase {
	if cfg.Window <= 0 {
		cfg.Window = reminder.DefaultWindow
	}
	return &implUseCase{
		l:        l,
		events:   events,
		notifier: notifier,
		dates:    dates,
		window:   cfg.Window,
		sent:     expirable.NewLRU[string, struct{}](1024, nil, reminder.SentTTL),
		retry:    expirable.NewLRU[string, notify.Message](256, nil, reminder.RetryTTL),
	}
}
