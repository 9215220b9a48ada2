package hebcal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://www.hebcal.com"

// Client is the HTTP wrapper for the Hebcal REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Hebcal client. An empty baseURL uses the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Convert returns the Hebrew date of a Gregorian day.
func (c *Client) Convert(ctx context.Context, date time.Time) (*HebrewDate, error) {
	q := url.Values{}
	q.Set("cfg", "json")
	q.Set("g2h", "1")
	q.Set("strict", "1")
	q.Set("date", date.Format("2006-01-02"))

	var out HebrewDate
	if err := c.getJSON(ctx, "/converter?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Holidays returns holiday names for a Gregorian year keyed by YYYY-MM-DD.
// When a day has several entries the first one wins.
func (c *Client) Holidays(ctx context.Context, year int, israel bool) (map[string]string, error) {
	q := url.Values{}
	q.Set("v", "1")
	q.Set("cfg", "json")
	q.Set("year", strconv.Itoa(year))
	q.Set("month", "x")
	q.Set("maj", "on")
	q.Set("min", "on")
	q.Set("mod", "on")
	q.Set("nx", "on")
	q.Set("lg", "he")
	if israel {
		q.Set("i", "on")
	}

	var resp struct {
		Items []Item `json:"items"`
	}
	if err := c.getJSON(ctx, "/hebcal?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(resp.Items))
	for _, it := range resp.Items {
		if len(it.Date) < 10 {
			continue
		}
		key := it.Date[:10]
		if _, ok := out[key]; ok {
			continue
		}
		out[key] = it.DisplayName()
	}
	return out, nil
}

// Shabbat returns candle lighting and havdalah times for the weekend that starts on friday.
func (c *Client) Shabbat(ctx context.Context, lat, lon float64, tzid string, friday time.Time) (*ShabbatTimes, error) {
	if tzid == "" {
		tzid = "Asia/Jerusalem"
	}
	day := friday.Format("2006-01-02")
	q := url.Values{}
	q.Set("cfg", "json")
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("tzid", tzid)
	q.Set("start", day)
	q.Set("end", friday.AddDate(0, 0, 1).Format("2006-01-02"))

	var resp struct {
		Items []Item `json:"items"`
	}
	if err := c.getJSON(ctx, "/shabbat?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	var out ShabbatTimes
	for _, it := range resp.Items {
		var dst **time.Time
		switch it.Category {
		case CategoryCandles:
			dst = &out.CandleLighting
		case CategoryHavdalah:
			dst = &out.Havdalah
		default:
			continue
		}
		if *dst != nil {
			continue
		}
		t, err := time.Parse(time.RFC3339, it.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hebcal %s time %q: %w", it.Category, it.Date, err)
		}
		*dst = &t
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build hebcal request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call hebcal API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("hebcal API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode hebcal response: %w", err)
	}
	return nil
}
