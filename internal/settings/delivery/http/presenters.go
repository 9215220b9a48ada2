package http

import "bnapp/internal/settings"

type saveCityReq struct {
	City string `json:"city" binding:"required,max=100"`
}

type settingsResp struct {
	City      string   `json:"city"`
	Lat       *float64 `json:"lat,omitempty"`
	Lon       *float64 `json:"lon,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
	HasCoords bool     `json:"hasCoords"`
}

func newSettingsResp(s settings.Settings) settingsResp {
	return settingsResp{
		City:      s.City,
		Lat:       s.Lat,
		Lon:       s.Lon,
		Timezone:  s.Timezone,
		HasCoords: s.HasCoords(),
	}
}
