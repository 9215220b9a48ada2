package rtdb

import (
	"context"

	"bnapp/internal/settings"
	repo "bnapp/internal/settings/repository"
)

// record mirrors the field names the web client writes.
type record struct {
	City    string   `json:"city"`
	CityLat *float64 `json:"cityLat"`
	CityLon *float64 `json:"cityLon"`
	CityTz  string   `json:"cityTz"`
}

func (r *implRepository) Get(ctx context.Context) (settings.Settings, error) {
	var rec record
	if _, err := r.db.Get(ctx, settingsRoot, &rec); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return settings.Settings{}, repo.ErrFailedToGet
	}
	return settings.Settings{City: rec.City, Lat: rec.CityLat, Lon: rec.CityLon, Timezone: rec.CityTz}, nil
}

// Save patches the four fields so unrelated keys under /settings survive.
func (r *implRepository) Save(ctx context.Context, opt repo.SaveOptions) error {
	fields := map[string]any{
		"city":    opt.City,
		"cityLat": nil,
		"cityLon": nil,
		"cityTz":  nil,
	}
	if opt.Lat != nil && opt.Lon != nil {
		fields["cityLat"] = *opt.Lat
		fields["cityLon"] = *opt.Lon
	}
	if opt.Timezone != "" {
		fields["cityTz"] = opt.Timezone
	}
	if err := r.db.Update(ctx, settingsRoot, fields); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
