package rtdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidPath is returned for paths that are empty or contain characters
// the realtime database rejects in keys.
var ErrInvalidPath = errors.New("rtdb: invalid path")

// Client is the HTTP wrapper for the Firebase Realtime Database REST API.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a new realtime database client. authToken may be empty
// for databases with open rules.
func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Get reads the JSON value at path into out. found is false when the node is absent.
func (c *Client) Get(ctx context.Context, path string, out any) (found bool, err error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return false, err
	}
	if isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode rtdb value at %q: %w", path, err)
	}
	return true, nil
}

// GetShallow returns the child keys of path without their values.
func (c *Client) GetShallow(ctx context.Context, path string) ([]string, error) {
	raw, err := c.do(ctx, http.MethodGet, path, url.Values{"shallow": {"true"}}, nil)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode rtdb shallow keys at %q: %w", path, err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys, nil
}

// Set replaces the value at path (PUT).
func (c *Client) Set(ctx context.Context, path string, value any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, value)
	return err
}

// Update merges the given children into path (PATCH).
func (c *Client) Update(ctx context.Context, path string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, fields)
	return err
}

// Push appends value under path with a server generated key (POST) and returns the key.
func (c *Client) Push(ctx context.Context, path string, value any) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, path, nil, value)
	if err != nil {
		return "", err
	}
	var resp struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("failed to decode rtdb push response: %w", err)
	}
	if resp.Name == "" {
		return "", fmt.Errorf("rtdb push at %q returned no key", path)
	}
	return resp.Name, nil
}

// Remove deletes the node at path. Removing an absent node is not an error.
func (c *Client) Remove(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal rtdb %s body: %w", method, err)
		}
		reader = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build rtdb %s request: %w", method, err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call rtdb %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rtdb response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	if query == nil {
		query = url.Values{}
	}
	if c.authToken != "" {
		query.Set("auth", c.authToken)
	}
	u := fmt.Sprintf("%s/%s.json", c.baseURL, clean)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}

// CleanPath trims slashes and validates each segment of a database path.
func CleanPath(path string) (string, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return "", ErrInvalidPath
	}
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s == "" || strings.ContainsAny(s, ".#$[]") {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/"), nil
}

// Join builds a database path from segments.
func Join(segs ...string) string {
	return strings.Join(segs, "/")
}

func isNull(raw []byte) bool {
	s := bytes.TrimSpace(raw)
	return len(s) == 0 || bytes.Equal(s, []byte("null"))
}

// StatusError is returned when the database answers with a non-200 status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rtdb API %s %s error %d: %s", e.Method, e.Path, e.Code, e.Body)
}
