package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	eventSQLite "bnapp/internal/event/repository/sqlite"
	eventUC "bnapp/internal/event/usecase"
	"bnapp/internal/middleware"
	"bnapp/internal/model"
	"bnapp/pkg/datemath"
	"bnapp/pkg/log"
	"bnapp/pkg/sqlitedb"
)

func newTestServer(t *testing.T, ready func(context.Context) error) *HTTPServer {
	t.Helper()
	db, err := sqlitedb.Open(context.Background(), sqlitedb.Config{Path: filepath.Join(t.TempDir(), "bnapp.db")})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dates, err := datemath.NewParser("Asia/Jerusalem")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	l := log.NewNop()

	srv, err := New(l, Config{
		Logger:     l,
		Port:       8080,
		Mode:       gin.TestMode,
		Middleware: middleware.Config{DefaultViewer: model.OwnerBinyamin},
		Dates:      dates,
		Ready:      ready,
		EventUC:    eventUC.New(l, eventSQLite.New(db, l), dates, nil),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 8080}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode}},
		{name: "missing dates", cfg: Config{Port: 8080, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(log.NewNop(), tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		viewer string
		want   int
	}{
		{name: "health", method: http.MethodGet, path: "/health", want: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", want: http.StatusOK},
		{name: "live", method: http.MethodGet, path: "/live", want: http.StatusOK},
		{name: "day view", method: http.MethodGet, path: "/api/v1/events/days/2024-05-01", want: http.StatusOK},
		{name: "unknown viewer", method: http.MethodGet, path: "/api/v1/events/days/2024-05-01", viewer: "mallory", want: http.StatusUnauthorized},
		{name: "optional domain skipped", method: http.MethodGet, path: "/api/v1/settings", want: http.StatusNotFound},
		{name: "telegram not configured", method: http.MethodPost, path: "/webhook/telegram", want: http.StatusNotFound},
		{name: "cors preflight", method: http.MethodOptions, path: "/api/v1/events/tasks", want: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/api/v2/nothing", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.viewer != "" {
				req.Header.Set(middleware.ViewerHeader, tt.viewer)
			}
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, w.Code, tt.want)
			}
			if w.Header().Get(middleware.RequestIDHeader) == "" {
				t.Error("missing request id header")
			}
		})
	}
}

func TestReadyCheck_StoreDown(t *testing.T) {
	srv := newTestServer(t, func(context.Context) error { return errors.New("connection refused") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Status != "not_ready" {
		t.Errorf("status = %q", body.Data.Status)
	}
}
