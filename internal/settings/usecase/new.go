package usecase

import (
	"context"

	"bnapp/internal/settings"
	"bnapp/internal/settings/repository"
	"bnapp/pkg/log"
	"bnapp/pkg/openmeteo"
)

// Geocoder resolves a city name. *openmeteo.Client satisfies it.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (*openmeteo.Place, error)
}

type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	geo         Geocoder
	defaultCity string
}

// New creates the settings UseCase. An empty defaultCity falls back to settings.DefaultCity.
func New(l log.Logger, repo repository.Repository, geo Geocoder, defaultCity string) *implUseCase {
	if defaultCity == "" {
		defaultCity = settings.DefaultCity
	}
	return &implUseCase{l: l, repo: repo, geo: geo, defaultCity: defaultCity}
}
