package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"bnapp/internal/middleware"
	"bnapp/internal/model"
	"bnapp/internal/settings"
	"bnapp/pkg/log"
)

type mockUseCase struct {
	saveErr error
}

func (m *mockUseCase) Get(ctx context.Context) (settings.Settings, error) {
	return settings.Settings{City: settings.DefaultCity}, nil
}

func (m *mockUseCase) SaveCity(ctx context.Context, city string) (settings.Settings, error) {
	return settings.Settings{City: city}, m.saveErr
}

func (m *mockUseCase) EnsureCoords(ctx context.Context) (settings.Settings, error) {
	return settings.Settings{}, nil
}

func setupRouter(uc settings.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{DefaultViewer: model.OwnerBinyamin})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func TestGetHandler(t *testing.T) {
	r := setupRouter(&mockUseCase{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Data settingsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.City != settings.DefaultCity || body.Data.HasCoords {
		t.Errorf("unexpected body %+v", body.Data)
	}
}

func TestSaveCityHandler(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		saveErr error
		want    int
	}{
		{name: "saved", body: `{"city":"חיפה"}`, want: http.StatusOK},
		{name: "missing city", body: `{}`, want: http.StatusBadRequest},
		{name: "geocode failed", body: `{"city":"xyz"}`, saveErr: settings.ErrGeocodeFailed, want: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockUseCase{saveErr: tt.saveErr})
			req := httptest.NewRequest(http.MethodPut, "/api/v1/settings/city", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
