package usecase

import (
	"context"
	"fmt"
	"strings"

	"bnapp/internal/settings"
	repo "bnapp/internal/settings/repository"
)

func (uc *implUseCase) Get(ctx context.Context) (settings.Settings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get repo.Get: %v", err)
		return settings.Settings{}, err
	}
	if strings.TrimSpace(s.City) == "" {
		s.City = uc.defaultCity
	}
	return s, nil
}

func (uc *implUseCase) SaveCity(ctx context.Context, city string) (settings.Settings, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return settings.Settings{}, settings.ErrCityRequired
	}

	s, geoErr := uc.locate(ctx, city)
	if err := uc.save(ctx, s); err != nil {
		return settings.Settings{}, err
	}
	if geoErr != nil {
		return s, geoErr
	}
	return s, nil
}

func (uc *implUseCase) EnsureCoords(ctx context.Context) (settings.Settings, error) {
	s, err := uc.Get(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	if s.HasCoords() {
		return s, nil
	}

	located, err := uc.locate(ctx, s.City)
	if err != nil {
		return s, err
	}
	if err := uc.save(ctx, located); err != nil {
		// The coordinates are still usable for this call.
		uc.l.Warnf(ctx, "uc.EnsureCoords: coordinates not persisted: %v", err)
	}
	return located, nil
}

// locate always returns settings carrying city; coordinates only on success.
func (uc *implUseCase) locate(ctx context.Context, city string) (settings.Settings, error) {
	s := settings.Settings{City: city}
	if uc.geo == nil {
		return s, fmt.Errorf("%w: no geocoder configured", settings.ErrGeocodeFailed)
	}
	place, err := uc.geo.Geocode(ctx, city)
	if err != nil {
		uc.l.Warnf(ctx, "uc.locate Geocode %q: %v", city, err)
		return s, fmt.Errorf("%w: %v", settings.ErrGeocodeFailed, err)
	}
	lat, lon := place.Latitude, place.Longitude
	s.Lat, s.Lon, s.Timezone = &lat, &lon, place.Timezone
	return s, nil
}

func (uc *implUseCase) save(ctx context.Context, s settings.Settings) error {
	err := uc.repo.Save(ctx, repo.SaveOptions{City: s.City, Lat: s.Lat, Lon: s.Lon, Timezone: s.Timezone})
	if err != nil {
		uc.l.Errorf(ctx, "uc.save repo.Save: %v", err)
	}
	return err
}
