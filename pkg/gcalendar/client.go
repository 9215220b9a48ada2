package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DefaultCalendarID is used when no calendar is configured.
const DefaultCalendarID = "primary"

// Client wraps the Google Calendar API service for one calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
}

// Options selects the target calendar and the timezone of written events.
type Options struct {
	CalendarID string
	Timezone   string
	// TokenPath is the OAuth token produced by scripts/gcal-auth; only read
	// for installed-app credentials.
	TokenPath string
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, opts Options) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, opts)
}

// NewClientFromCredentialsJSON accepts a service account key or installed-app
// OAuth credentials paired with a stored token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, opts Options) (*Client, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return newClient(ctx, opts, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenPath := opts.TokenPath
	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, opts, option.WithTokenSource(oauthCfg.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	return newClient(ctx, opts, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts Options, clientOpt option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, clientOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	calendarID := opts.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	return &Client{service: svc, calendarID: calendarID, timezone: opts.Timezone}, nil
}

// LoadToken reads an OAuth token saved as JSON.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a token at %s (run scripts/gcal-auth): %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok as JSON readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token %s: %w", path, err)
	}
	return nil
}

// CreateEvent creates a new event and returns it with its remote ID.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.AllDay {
		event.Start = &calendar.EventDateTime{Date: req.StartTime.Format("2006-01-02")}
		event.End = &calendar.EventDateTime{Date: req.StartTime.AddDate(0, 0, 1).Format("2006-01-02")}
	} else {
		event.Start = &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339), TimeZone: c.timezone}
		event.End = &calendar.EventDateTime{DateTime: req.EndTime.Format(time.RFC3339), TimeZone: c.timezone}
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}, nil
}

// DeleteEvent removes an event. A missing event is not an error.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.service.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// ListEvents returns single (expanded) events within the request window.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(c.calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	res, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, it := range res.Items {
		events = append(events, Event{
			ID:          it.Id,
			Summary:     it.Summary,
			Description: it.Description,
			HtmlLink:    it.HtmlLink,
			Location:    it.Location,
			StartTime:   parseEventTime(it.Start),
			EndTime:     parseEventTime(it.End),
		})
	}
	return events, nil
}

func parseEventTime(dt *calendar.EventDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	if dt.DateTime != "" {
		t, _ := time.Parse(time.RFC3339, dt.DateTime)
		return t
	}
	t, _ := time.Parse("2006-01-02", dt.Date)
	return t
}
