package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"bnapp/config"
	"bnapp/config/store"
	eventUC "bnapp/internal/event/usecase"
	"bnapp/internal/reminder/job"
	reminderUC "bnapp/internal/reminder/usecase"
	"bnapp/pkg/datemath"
	"bnapp/pkg/log"
	"bnapp/pkg/notify"
	"bnapp/pkg/telegram"
)

// main is the entry point for the background reminder worker.
// It shares the store with cmd/api and never serves HTTP.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases and the notifier
//  3. Schedule cron jobs
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := maxprocs.Set(maxprocs.Logger(func(f string, a ...any) { logger.Infof(ctx, f, a...) })); err != nil {
		logger.Warnf(ctx, "automaxprocs: %v", err)
	}

	logger.Info(ctx, "Starting reminder worker...")

	// Infrastructure
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

	notifier, err := newNotifier(ctx, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize notifier: ", err)
		return
	}
	logger.Infof(ctx, "Notifications via %s", cfg.Notify.Channel)

	// UseCases
	events := eventUC.New(logger, repos.Event, dates, nil)
	reminders := reminderUC.New(logger, events, notifier, dates, reminderUC.Config{Window: cfg.Reminder.Window})

	// Jobs
	scheduler, err := job.New(logger, reminders, job.Config{
		ScanSpec:   cfg.Reminder.ScanSpec,
		DigestSpec: cfg.Reminder.DigestSpec,
		Location:   dates.Location(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to schedule jobs: ", err)
		return
	}

	if err := scheduler.Run(ctx); err != nil {
		logger.Error(ctx, "Reminder worker failed: ", err)
		return
	}
	logger.Info(ctx, "Reminder worker stopped gracefully")
}

func newNotifier(ctx context.Context, cfg *config.Config) (notify.Notifier, error) {
	switch cfg.Notify.Channel {
	case config.NotifyChannelSNS:
		return newSNSNotifier(ctx, cfg)
	case config.NotifyChannelAll:
		tg, err := newTelegramNotifier(cfg)
		if err != nil {
			return nil, err
		}
		sns, err := newSNSNotifier(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return notify.Multi(tg, sns), nil
	default:
		return newTelegramNotifier(cfg)
	}
}

func newTelegramNotifier(cfg *config.Config) (notify.Notifier, error) {
	if cfg.Telegram.BotToken == "" {
		return nil, errors.New("telegram.bot_token is required for telegram notifications")
	}
	return notify.NewTelegram(telegram.NewBot(cfg.Telegram.BotToken), cfg.Telegram.ChatIDs), nil
}

func newSNSNotifier(ctx context.Context, cfg *config.Config) (notify.Notifier, error) {
	sns, err := notify.NewSNSFromEnv(ctx, cfg.Notify.SNSTopicARN)
	if err != nil {
		return nil, err
	}
	return sns, nil
}
