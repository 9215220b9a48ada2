package calendar

import (
	"context"

	"bnapp/internal/model"
)

// UseCase builds the month view: Hebrew dates, holidays, Shabbat times and
// which days carry items.
type UseCase interface {
	Month(ctx context.Context, sc model.Scope, year, month int) (MonthOutput, error)
}
