package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"bnapp/internal/calendar"
	"bnapp/internal/model"
)

const convertConcurrency = 4

// Month builds the grid of year/month. Hebcal lookups are best effort: a
// failure leaves the affected fields empty.
func (uc *implUseCase) Month(ctx context.Context, sc model.Scope, year, month int) (calendar.MonthOutput, error) {
	if year < 1900 || year > 2200 || month < 1 || month > 12 {
		return calendar.MonthOutput{}, calendar.ErrInvalidMonth
	}

	loc := uc.dates.Location()
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	dayItems, err := uc.events.ListRange(ctx, sc, first, last)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Month ListRange: %v", err)
		return calendar.MonthOutput{}, err
	}

	today := uc.dates.DateKey(uc.now())
	out := calendar.MonthOutput{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]calendar.Day, 0, last.Day()),
	}
	for i, d := 0, first; !d.After(last); i, d = i+1, d.AddDate(0, 0, 1) {
		day := calendar.Day{
			DateKey: uc.dates.DateKey(d),
			Day:     d.Day(),
			Weekday: d.Weekday(),
		}
		day.Today = day.DateKey == today
		if i < len(dayItems) && dayItems[i].DateKey == day.DateKey {
			day.DayOff = dayItems[i].Holiday
			day.ItemCount = len(dayItems[i].Items)
			day.HasEvents = day.ItemCount > 0
		}
		out.Days = append(out.Days, day)
	}

	if uc.hebcal == nil {
		return out, nil
	}
	uc.fillHolidays(ctx, out.Days, year)
	uc.fillHebrewDates(ctx, out.Days, first)
	uc.fillShabbat(ctx, out.Days, first)
	return out, nil
}

func (uc *implUseCase) fillHolidays(ctx context.Context, days []calendar.Day, year int) {
	names, ok := uc.holidays.Get(year)
	if !ok {
		var err error
		names, err = uc.hebcal.Holidays(ctx, year, uc.israel)
		if err != nil {
			uc.l.Warnf(ctx, "uc.fillHolidays Holidays %d: %v", year, err)
			return
		}
		uc.holidays.Add(year, names)
	}
	for i := range days {
		days[i].HolidayName = names[days[i].DateKey]
	}
}

func (uc *implUseCase) fillHebrewDates(ctx context.Context, days []calendar.Day, first time.Time) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(convertConcurrency)

	for i := range days {
		if h, ok := uc.hebrew.Get(days[i].DateKey); ok {
			days[i].HebrewDate = h
			continue
		}
		i := i
		g.Go(func() error {
			hd, err := uc.hebcal.Convert(gctx, first.AddDate(0, 0, i))
			if err != nil {
				uc.l.Warnf(gctx, "uc.fillHebrewDates Convert %s: %v", days[i].DateKey, err)
				return nil
			}
			days[i].HebrewDate = hd.Hebrew
			uc.hebrew.Add(days[i].DateKey, hd.Hebrew)
			return nil
		})
	}
	_ = g.Wait()
}

// fillShabbat sets candle lighting on Fridays and havdalah on the following
// Saturday. It needs coordinates and silently skips without them.
func (uc *implUseCase) fillShabbat(ctx context.Context, days []calendar.Day, first time.Time) {
	s, err := uc.settings.EnsureCoords(ctx)
	if err != nil || !s.HasCoords() {
		uc.l.Debugf(ctx, "uc.fillShabbat: no coordinates: %v", err)
		return
	}

	for i := range days {
		if days[i].Weekday != time.Friday {
			continue
		}
		key := fmt.Sprintf("%.4f,%.4f,%s", *s.Lat, *s.Lon, days[i].DateKey)
		times, ok := uc.shabbat.Get(key)
		if !ok {
			res, err := uc.hebcal.Shabbat(ctx, *s.Lat, *s.Lon, s.Timezone, first.AddDate(0, 0, i))
			if err != nil {
				uc.l.Warnf(ctx, "uc.fillShabbat Shabbat %s: %v", days[i].DateKey, err)
				continue
			}
			times = *res
			uc.shabbat.Add(key, times)
		}
		days[i].CandleLighting = uc.clock(times.CandleLighting)
		if i+1 < len(days) {
			days[i+1].Havdalah = uc.clock(times.Havdalah)
		}
	}
}

func (uc *implUseCase) clock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
