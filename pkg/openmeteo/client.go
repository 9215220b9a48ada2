package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com"
	DefaultForecastURL  = "https://api.open-meteo.com"
)

var ErrPlaceNotFound = errors.New("place not found")

// Client is the HTTP wrapper for the Open-Meteo geocoding and forecast APIs.
type Client struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
}

// NewClient creates a new Open-Meteo client. Empty URLs fall back to the public endpoints.
func NewClient(geocodingURL, forecastURL string) *Client {
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	return &Client{
		geocodingURL: strings.TrimRight(geocodingURL, "/"),
		forecastURL:  strings.TrimRight(forecastURL, "/"),
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Geocode resolves a city name to its first match.
func (c *Client) Geocode(ctx context.Context, name string) (*Place, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "he")
	q.Set("format", "json")

	var resp struct {
		Results []Place `json:"results"`
	}
	if err := c.getJSON(ctx, c.geocodingURL+"/v1/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPlaceNotFound, name)
	}
	return &resp.Results[0], nil
}

// Forecast fetches the hourly forecast of a single day (YYYY-MM-DD).
func (c *Client) Forecast(ctx context.Context, lat, lon float64, timezone, date string) (*Hourly, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("hourly", "temperature_2m,precipitation_probability,weather_code")
	if timezone != "" {
		q.Set("timezone", timezone)
	}
	q.Set("start_date", date)
	q.Set("end_date", date)

	var resp struct {
		Hourly Hourly `json:"hourly"`
	}
	if err := c.getJSON(ctx, c.forecastURL+"/v1/forecast?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp.Hourly, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build open-meteo request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call open-meteo API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("open-meteo API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode open-meteo response: %w", err)
	}
	return nil
}
