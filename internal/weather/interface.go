package weather

import (
	"context"
	"time"
)

// UseCase answers "what is the weather on this day" for the household city.
type UseCase interface {
	ForDate(ctx context.Context, date time.Time) (Report, error)
}
