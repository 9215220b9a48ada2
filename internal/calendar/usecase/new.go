package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"bnapp/internal/calendar"
	"bnapp/internal/event"
	"bnapp/internal/model"
	"bnapp/internal/settings"
	"bnapp/pkg/datemath"
	"bnapp/pkg/hebcal"
	"bnapp/pkg/log"
)

// Hebcal is the part of *hebcal.Client used by the month view.
type Hebcal interface {
	Convert(ctx context.Context, date time.Time) (*hebcal.HebrewDate, error)
	Holidays(ctx context.Context, year int, israel bool) (map[string]string, error)
	Shabbat(ctx context.Context, lat, lon float64, tzid string, friday time.Time) (*hebcal.ShabbatTimes, error)
}

// Events lists stored items per day. event.UseCase satisfies it.
type Events interface {
	ListRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]event.DayOutput, error)
}

// Config holds the month view options.
type Config struct {
	Israel   bool
	CacheTTL time.Duration
}

type implUseCase struct {
	l        log.Logger
	events   Events
	settings settings.UseCase
	hebcal   Hebcal
	dates    *datemath.Parser
	israel   bool
	now      func() time.Time

	holidays *expirable.LRU[int, map[string]string]
	hebrew   *expirable.LRU[string, string]
	shabbat  *expirable.LRU[string, hebcal.ShabbatTimes]
}

// New creates the calendar UseCase. hebcal may be nil, which leaves the
// Hebrew fields empty.
func New(l log.Logger, events Events, s settings.UseCase, hc Hebcal, dates *datemath.Parser, cfg Config) *implUseCase {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = calendar.DefaultCacheTTL
	}
	return &implUseCase{
		l:        l,
		events:   events,
		settings: s,
		hebcal:   hc,
		dates:    dates,
		israel:   cfg.Israel,
		now:      time.Now,
		holidays: expirable.NewLRU[int, map[string]string](8, nil, ttl),
		hebrew:   expirable.NewLRU[string, string](1024, nil, ttl),
		shabbat:  expirable.NewLRU[string, hebcal.ShabbatTimes](64, nil, ttl),
	}
}
