package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"bnapp/internal/calendar"
	"bnapp/internal/event"
	"bnapp/internal/gihari"
	tgDelivery "bnapp/internal/gihari/delivery/telegram"
	"bnapp/internal/middleware"
	"bnapp/internal/settings"
	"bnapp/internal/shopping"
	"bnapp/internal/weather"
	"bnapp/pkg/datemath"
	"bnapp/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	dates       *datemath.Parser
	ready       func(ctx context.Context) error

	// Domains
	eventUC    event.UseCase
	shoppingUC shopping.UseCase
	settingsUC settings.UseCase
	weatherUC  weather.UseCase
	calendarUC calendar.UseCase
	gihariUC   gihari.UseCase

	// Optional Telegram webhook
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Config
	Dates       *datemath.Parser
	// Ready reports whether the store is reachable; nil means always ready.
	Ready func(ctx context.Context) error

	EventUC    event.UseCase
	ShoppingUC shopping.UseCase
	SettingsUC settings.UseCase
	WeatherUC  weather.UseCase
	CalendarUC calendar.UseCase
	GihariUC   gihari.UseCase

	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.Middleware),
		dates:           cfg.Dates,
		ready:           cfg.Ready,
		eventUC:         cfg.EventUC,
		shoppingUC:      cfg.ShoppingUC,
		settingsUC:      cfg.SettingsUC,
		weatherUC:       cfg.WeatherUC,
		calendarUC:      cfg.CalendarUC,
		gihariUC:        cfg.GihariUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	if srv.eventUC == nil {
		return errors.New("event use case is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
