package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "bnapp/internal/calendar/delivery/http"
	eventHTTP "bnapp/internal/event/delivery/http"
	gihariHTTP "bnapp/internal/gihari/delivery/http"
	settingsHTTP "bnapp/internal/settings/delivery/http"
	shoppingHTTP "bnapp/internal/shopping/delivery/http"
	weatherHTTP "bnapp/internal/weather/delivery/http"
)

// Each domain follows the same steps: build the HTTP handler around its use
// case, then mount its routes under /api/v1. Optional domains are skipped
// when their use case is nil.

func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup) {
	h := eventHTTP.New(srv.l, srv.eventUC, srv.dates)
	eventHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Event domain registered")
}

func (srv HTTPServer) setupShoppingDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.shoppingUC == nil {
		return
	}
	shoppingHTTP.RegisterRoutes(api, shoppingHTTP.New(srv.l, srv.shoppingUC), srv.mw)
	srv.l.Infof(ctx, "Shopping domain registered")
}

func (srv HTTPServer) setupSettingsDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.settingsUC == nil {
		return
	}
	settingsHTTP.RegisterRoutes(api, settingsHTTP.New(srv.l, srv.settingsUC), srv.mw)
	srv.l.Infof(ctx, "Settings domain registered")
}

func (srv HTTPServer) setupWeatherDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.weatherUC == nil {
		return
	}
	weatherHTTP.RegisterRoutes(api, weatherHTTP.New(srv.l, srv.weatherUC, srv.dates), srv.mw)
	srv.l.Infof(ctx, "Weather domain registered")
}

func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.calendarUC == nil {
		return
	}
	calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, srv.calendarUC), srv.mw)
	srv.l.Infof(ctx, "Calendar domain registered")
}

func (srv HTTPServer) setupGihariDomain(ctx context.Context, api *gin.RouterGroup) {
	if srv.gihariUC == nil {
		return
	}
	gihariHTTP.RegisterRoutes(api, gihariHTTP.New(srv.l, srv.gihariUC), srv.mw)
	srv.l.Infof(ctx, "Gihari domain registered")
}
