package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"bnapp/config"
	"bnapp/config/store"
	_ "bnapp/docs" // Swagger docs
	calendarUC "bnapp/internal/calendar/usecase"
	eventUC "bnapp/internal/event/usecase"
	tgDelivery "bnapp/internal/gihari/delivery/telegram"
	gihariUC "bnapp/internal/gihari/usecase"
	"bnapp/internal/httpserver"
	"bnapp/internal/middleware"
	"bnapp/internal/model"
	settingsUC "bnapp/internal/settings/usecase"
	shoppingUC "bnapp/internal/shopping/usecase"
	weatherUC "bnapp/internal/weather/usecase"
	"bnapp/pkg/datemath"
	"bnapp/pkg/gcalendar"
	"bnapp/pkg/hebcal"
	"bnapp/pkg/log"
	"bnapp/pkg/openmeteo"
	"bnapp/pkg/telegram"
)

// @title       BNAPP API
// @description Shared family calendar: daily load, free time, tasks, shopping, weather, Hebrew calendar and the Gihari assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config.Watch(func(c *config.Config) {
		logger.SetLevel(c.Logger.Level)
		logger.Infof(ctx, "Config reloaded, log level %s", c.Logger.Level)
	}, func(err error) {
		logger.Warnf(ctx, "Ignoring config change: %v", err)
	})

	if _, err := maxprocs.Set(maxprocs.Logger(func(f string, a ...any) { logger.Infof(ctx, f, a...) })); err != nil {
		logger.Warnf(ctx, "automaxprocs: %v", err)
	}

	logger.Info(ctx, "Starting BNAPP API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	dates, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	repos, err := store.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect store: ", err)
		return
	}
	defer repos.Close()

	// Google Calendar mirror (optional)
	var mirror eventUC.Mirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, gcalendar.Options{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.App.Timezone,
			TokenPath:  cfg.GoogleCalendar.TokenPath,
		})
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			mirror = calendarClient
			logger.Info(ctx, "✅ Google Calendar mirror initialized")
		}
	}

	meteo := openmeteo.NewClient(cfg.Weather.GeocodingURL, cfg.Weather.ForecastURL)
	hebcalClient := hebcal.NewClient(cfg.Hebcal.BaseURL)

	// 4. Use cases
	events := eventUC.New(logger, repos.Event, dates, mirror)
	shopping := shoppingUC.New(logger, repos.Shopping)
	settings := settingsUC.New(logger, repos.Settings, meteo, cfg.App.DefaultCity)
	weather := weatherUC.New(logger, settings, meteo, dates, cfg.Weather.CacheTTL)
	calendar := calendarUC.New(logger, events, settings, hebcalClient, dates, calendarUC.Config{
		Israel:   cfg.Hebcal.Israel,
		CacheTTL: cfg.Hebcal.CacheTTL,
	})
	gihari := gihariUC.New(logger, events, repos.Gihari, dates, gihariUC.Config{Humor: cfg.Assistant.Humor})

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	unregisterWebhook := func(context.Context) {}
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, gihari, bot, tgDelivery.Config{
			Chats:  chatsByOwner(cfg.Telegram.ChatIDs),
			Secret: cfg.Telegram.WebhookSecret,
		})

		unregisterWebhook = registerWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret)
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 6. HTTP Server
	viewer, ok := model.ParseOwner(cfg.App.DefaultViewer)
	if !ok || !viewer.IsParticipant() {
		logger.Warnf(ctx, "Invalid default viewer %q, using %s", cfg.App.DefaultViewer, model.OwnerBinyamin)
		viewer = model.OwnerBinyamin
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			DefaultViewer:   viewer,
			RateLimitPerMin: cfg.Assistant.RateLimitPerMin,
			AllowedOrigins:  cfg.App.AllowedOrigins,
		},
		Dates:           dates,
		Ready:           repos.Ping,
		EventUC:         events,
		ShoppingUC:      shopping,
		SettingsUC:      settings,
		WeatherUC:       weather,
		CalendarUC:      calendar,
		GihariUC:        gihari,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	runErr := httpServer.Run(ctx)

	cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	unregisterWebhook(cleanupCtx)

	if runErr != nil {
		logger.Error(ctx, "Failed to run server: ", runErr)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func chatsByOwner(ids map[string]int64) map[model.Owner]int64 {
	out := make(map[model.Owner]int64, len(ids))
	for name, id := range ids {
		if owner, ok := model.ParseOwner(name); ok && id != 0 {
			out[owner] = id
		}
	}
	return out
}
