package usecase

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"bnapp/internal/settings"
	"bnapp/internal/weather"
	"bnapp/pkg/datemath"
	"bnapp/pkg/log"
	"bnapp/pkg/openmeteo"
)

// Forecaster fetches an hourly forecast. *openmeteo.Client satisfies it.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64, timezone, date string) (*openmeteo.Hourly, error)
}

const cacheSize = 128

type implUseCase struct {
	l        log.Logger
	settings settings.UseCase
	client   Forecaster
	dates    *datemath.Parser
	cache    *expirable.LRU[string, weather.Report]
}

// New creates the weather UseCase. ttl <= 0 uses weather.DefaultCacheTTL.
func New(l log.Logger, s settings.UseCase, client Forecaster, dates *datemath.Parser, ttl time.Duration) *implUseCase {
	if ttl <= 0 {
		ttl = weather.DefaultCacheTTL
	}
	return &implUseCase{
		l:        l,
		settings: s,
		client:   client,
		dates:    dates,
		cache:    expirable.NewLRU[string, weather.Report](cacheSize, nil, ttl),
	}
}
