package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"bnapp/internal/weather"
	"bnapp/pkg/openmeteo"
)

const noon = "12:00"

// ForDate returns the noon forecast of date for the configured city.
func (uc *implUseCase) ForDate(ctx context.Context, date time.Time) (weather.Report, error) {
	s, err := uc.settings.EnsureCoords(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ForDate EnsureCoords: %v", err)
		return weather.Report{}, fmt.Errorf("%w: %v", weather.ErrNoLocation, err)
	}
	if !s.HasCoords() {
		return weather.Report{}, weather.ErrNoLocation
	}

	dateKey := uc.dates.DateKey(date)
	key := fmt.Sprintf("%.4f,%.4f,%s", *s.Lat, *s.Lon, dateKey)
	if r, ok := uc.cache.Get(key); ok {
		return r, nil
	}

	hourly, err := uc.client.Forecast(ctx, *s.Lat, *s.Lon, s.Timezone, dateKey)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ForDate Forecast: %v", err)
		return weather.Report{}, err
	}
	if hourly == nil || hourly.Empty() {
		return weather.Report{}, weather.ErrNoForecast
	}

	r := buildReport(*hourly, dateKey, s.City)
	uc.cache.Add(key, r)
	return r, nil
}

func buildReport(h openmeteo.Hourly, dateKey, city string) weather.Report {
	i := h.IndexAt(noon)
	if i >= len(h.Temperature2m) {
		i = 0
	}

	r := weather.Report{
		DateKey:     dateKey,
		City:        city,
		Temperature: int(math.Round(h.Temperature2m[i])),
	}
	if i < len(h.Time) && len(h.Time[i]) >= 5 {
		r.Hour = h.Time[i][len(h.Time[i])-5:]
	}
	if i < len(h.PrecipitationProbability) && h.PrecipitationProbability[i] != nil {
		p := int(math.Round(*h.PrecipitationProbability[i]))
		r.PrecipitationProbability = &p
	}
	if i < len(h.WeatherCode) {
		r.Code = h.WeatherCode[i]
	}
	cond := openmeteo.Describe(r.Code)
	r.Label, r.Emoji = cond.Label, cond.Emoji
	return r
}
