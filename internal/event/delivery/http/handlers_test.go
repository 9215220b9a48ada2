package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bnapp/internal/event"
	"bnapp/internal/middleware"
	"bnapp/internal/model"
	"bnapp/pkg/datemath"
	"bnapp/pkg/log"
)

type mockUseCase struct {
	lastScope  model.Scope
	lastCreate event.CreateInput
	lastUpdate event.UpdateInput
	lastDate   time.Time
	lastFilter event.TaskFilter
	err        error
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in event.CreateInput) (model.Item, error) {
	m.lastScope, m.lastCreate = sc, in
	if m.err != nil {
		return model.Item{}, m.err
	}
	return model.Item{ID: "x1", DateKey: in.DateKey, Title: in.Title, Owner: sc.Viewer}, nil
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, in event.UpdateInput) (model.Item, error) {
	m.lastUpdate = in
	return model.Item{ID: in.ID, DateKey: in.DateKey}, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, dk, id string) (model.Item, error) {
	return model.Item{ID: id, DateKey: dk, Address: "Herzl 1"}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, dk, id string) error {
	return m.err
}

func (m *mockUseCase) ListDay(ctx context.Context, sc model.Scope, date time.Time) (event.DayOutput, error) {
	m.lastDate = date
	return event.DayOutput{DateKey: date.Format("2006-01-02")}, m.err
}

func (m *mockUseCase) ListRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]event.DayOutput, error) {
	return nil, m.err
}

func (m *mockUseCase) ListTasks(ctx context.Context, sc model.Scope, f event.TaskFilter) ([]model.Item, error) {
	m.lastFilter = f
	return nil, m.err
}

func (m *mockUseCase) DailyLoad(ctx context.Context, sc model.Scope, date time.Time) (event.LoadOutput, error) {
	return event.LoadOutput{}, m.err
}

func (m *mockUseCase) LoadHistory(ctx context.Context, sc model.Scope, end time.Time, days int) (event.HistoryOutput, error) {
	return event.HistoryOutput{}, m.err
}

func (m *mockUseCase) SuggestNow(ctx context.Context, sc model.Scope, date time.Time) (event.SuggestOutput, error) {
	return event.SuggestOutput{}, m.err
}

func (m *mockUseCase) AutoBlocks(ctx context.Context, date time.Time) ([]event.Block, error) {
	return nil, m.err
}

func (m *mockUseCase) ToggleHoliday(ctx context.Context, date time.Time) (bool, error) {
	return true, m.err
}

func (m *mockUseCase) ExportICS(ctx context.Context, sc model.Scope) (string, error) {
	return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", m.err
}

func (m *mockUseCase) ImportICS(ctx context.Context, sc model.Scope, owner model.Owner, r io.Reader) (event.ImportOutput, error) {
	return event.ImportOutput{Skipped: 1}, m.err
}

func setupRouter(t *testing.T, uc *mockUseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	h := New(log.NewNop(), uc, dates)
	h.now = func() time.Time { return time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC) }

	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{DefaultViewer: model.OwnerBinyamin})
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(t, uc)

	body := `{"title":"Dentist","dateKey":"2024-05-02","startTime":"09:00","endTime":"10:00","duration":60}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.ViewerHeader, "nana")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.lastScope.Viewer != model.OwnerNana {
		t.Errorf("viewer = %q, want nana", uc.lastScope.Viewer)
	}
	if uc.lastCreate.Duration == nil || *uc.lastCreate.Duration != 60 || uc.lastCreate.StartTime != "09:00" {
		t.Errorf("input not mapped: %+v", uc.lastCreate)
	}

	var resp struct {
		Data itemResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.ID != "x1" || resp.Data.OwnerLabel != "ננה" {
		t.Errorf("unexpected response %+v", resp.Data)
	}
}

func TestCreateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ucErr  error
		viewer string
		want   int
	}{
		{name: "missing title", body: `{"dateKey":"2024-05-02"}`, want: http.StatusBadRequest},
		{name: "malformed json", body: `{`, want: http.StatusBadRequest},
		{name: "domain validation", body: `{"title":"x"}`, ucErr: event.ErrInvalidTime, want: http.StatusBadRequest},
		{name: "unknown viewer", body: `{"title":"x"}`, viewer: "bob", want: http.StatusUnauthorized},
		{name: "store failure", body: `{"title":"x"}`, ucErr: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, &mockUseCase{err: tt.ucErr})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/events/items", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.viewer != "" {
				req.Header.Set(middleware.ViewerHeader, tt.viewer)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestUpdateHandler_PartialFields(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(t, uc)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/events/items/2024-05-01/abc", strings.NewReader(`{"urgency":"today"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	in := uc.lastUpdate
	if in.DateKey != "2024-05-01" || in.ID != "abc" {
		t.Errorf("address not taken from URI: %+v", in)
	}
	if in.Urgency == nil || *in.Urgency != model.UrgencyToday || in.Title != nil || in.NewDateKey != nil {
		t.Errorf("unexpected partial input %+v", in)
	}
}

func TestDetailHandler_NotFound(t *testing.T) {
	r := setupRouter(t, &mockUseCase{err: event.ErrItemNotFound})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/items/2024-05-01/zzz", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDayHandler_Dates(t *testing.T) {
	tests := []struct {
		path string
		want string
		code int
	}{
		{path: "/api/v1/events/days/today", want: "2024-05-01", code: http.StatusOK},
		{path: "/api/v1/events/days/2024-06-10", want: "2024-06-10", code: http.StatusOK},
		{path: "/api/v1/events/days/10-06-2024", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			uc := &mockUseCase{}
			r := setupRouter(t, uc)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			if tt.want != "" && uc.lastDate.Format("2006-01-02") != tt.want {
				t.Errorf("date = %s, want %s", uc.lastDate, tt.want)
			}
		})
	}
}

func TestTasksHandler_DefaultFilter(t *testing.T) {
	uc := &mockUseCase{}
	r := setupRouter(t, uc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/tasks", nil))
	if w.Code != http.StatusOK || uc.lastFilter != event.TaskFilterUndated {
		t.Errorf("status=%d filter=%q", w.Code, uc.lastFilter)
	}
}

func TestExportHandler(t *testing.T) {
	r := setupRouter(t, &mockUseCase{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/export", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestRangeHandler(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ucErr error
		code  int
	}{
		{name: "ok", query: "?from=2024-05-01&to=2024-05-31", code: http.StatusOK},
		{name: "missing to", query: "?from=2024-05-01", code: http.StatusBadRequest},
		{name: "reversed", query: "?from=2024-05-31&to=2024-05-01", ucErr: event.ErrInvalidRange, code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, &mockUseCase{err: tt.ucErr})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/range"+tt.query, nil))
			if w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
		})
	}
}
