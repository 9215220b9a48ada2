package settings

import "context"

// UseCase manages the household settings: home city, its coordinates and timezone.
type UseCase interface {
	Get(ctx context.Context) (Settings, error)
	// SaveCity geocodes city and stores it with its coordinates. When geocoding
	// fails the city is stored without coordinates and the error is returned.
	SaveCity(ctx context.Context, city string) (Settings, error)
	// EnsureCoords returns settings that carry coordinates, geocoding the
	// stored city on demand.
	EnsureCoords(ctx context.Context) (Settings, error)
}
