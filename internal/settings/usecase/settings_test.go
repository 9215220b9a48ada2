package usecase

import (
	"context"
	"errors"
	"testing"

	"bnapp/internal/settings"
	repo "bnapp/internal/settings/repository"
	"bnapp/pkg/log"
	"bnapp/pkg/openmeteo"
)

type mockRepo struct {
	stored settings.Settings
	saves  int
}

func (m *mockRepo) Get(ctx context.Context) (settings.Settings, error) {
	return m.stored, nil
}

func (m *mockRepo) Save(ctx context.Context, opt repo.SaveOptions) error {
	m.saves++
	m.stored = settings.Settings{City: opt.City, Lat: opt.Lat, Lon: opt.Lon, Timezone: opt.Timezone}
	return nil
}

type mockGeocoder struct {
	calls int
	err   error
}

func (m *mockGeocoder) Geocode(ctx context.Context, name string) (*openmeteo.Place, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &openmeteo.Place{Name: name, Latitude: 31.77, Longitude: 35.21, Timezone: "Asia/Jerusalem"}, nil
}

func TestGet_DefaultCity(t *testing.T) {
	uc := New(log.NewNop(), &mockRepo{}, &mockGeocoder{}, "")
	s, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.City != settings.DefaultCity {
		t.Errorf("City = %q, want %q", s.City, settings.DefaultCity)
	}
}

func TestSaveCity(t *testing.T) {
	tests := []struct {
		name       string
		city       string
		geoErr     error
		wantErr    error
		wantCoords bool
		wantSaved  string
	}{
		{name: "geocoded", city: " חיפה ", wantCoords: true, wantSaved: "חיפה"},
		{name: "geocode failure keeps city", city: "כפר לא קיים", geoErr: openmeteo.ErrPlaceNotFound, wantErr: settings.ErrGeocodeFailed, wantSaved: "כפר לא קיים"},
		{name: "empty city", city: "  ", wantErr: settings.ErrCityRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRepo{}
			uc := New(log.NewNop(), r, &mockGeocoder{err: tt.geoErr}, "")

			s, err := uc.SaveCity(context.Background(), tt.city)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if r.stored.City != tt.wantSaved {
				t.Errorf("stored city = %q, want %q", r.stored.City, tt.wantSaved)
			}
			if s.HasCoords() != tt.wantCoords || r.stored.HasCoords() != tt.wantCoords {
				t.Errorf("coords = %v/%v, want %v", s.HasCoords(), r.stored.HasCoords(), tt.wantCoords)
			}
		})
	}
}

func TestEnsureCoords(t *testing.T) {
	r := &mockRepo{stored: settings.Settings{City: "באר שבע"}}
	geo := &mockGeocoder{}
	uc := New(log.NewNop(), r, geo, "")

	s, err := uc.EnsureCoords(context.Background())
	if err != nil || !s.HasCoords() {
		t.Fatalf("EnsureCoords = %+v, %v", s, err)
	}
	if _, err := uc.EnsureCoords(context.Background()); err != nil {
		t.Fatalf("second EnsureCoords: %v", err)
	}
	if geo.calls != 1 {
		t.Errorf("geocoder called %d times, want 1", geo.calls)
	}
	if r.stored.Timezone != "Asia/Jerusalem" {
		t.Errorf("timezone not persisted: %+v", r.stored)
	}
}

func TestEnsureCoords_GeocodeFailure(t *testing.T) {
	uc := New(log.NewNop(), &mockRepo{}, &mockGeocoder{err: errors.New("offline")}, "")
	s, err := uc.EnsureCoords(context.Background())
	if !errors.Is(err, settings.ErrGeocodeFailed) {
		t.Fatalf("err = %v", err)
	}
	if s.City != settings.DefaultCity || s.HasCoords() {
		t.Errorf("unexpected settings %+v", s)
	}
}
