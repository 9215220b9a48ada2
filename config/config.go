package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	StoreDriverRTDB   = "rtdb"
	StoreDriverSQLite = "sqlite"

	NotifyChannelTelegram = "telegram"
	NotifyChannelSNS      = "sns"
	// NotifyChannelAll sends through Telegram and SNS together.
	NotifyChannelAll = "all"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Store    StoreConfig
	Firebase FirebaseConfig

	// BNAPP specifics
	App            AppConfig
	Weather        WeatherConfig
	Hebcal         HebcalConfig
	GoogleCalendar GoogleCalendarConfig
	Telegram       TelegramConfig
	Notify         NotifyConfig
	Reminder       ReminderConfig
	Assistant      AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StoreConfig struct {
	Driver      string
	SQLitePath  string
	BusyTimeout time.Duration
}

type FirebaseConfig struct {
	DatabaseURL string
	AuthToken   string
}

type AppConfig struct {
	DefaultViewer  string
	Timezone       string
	DefaultCity    string
	AllowedOrigins []string
}

type WeatherConfig struct {
	GeocodingURL string
	ForecastURL  string
	CacheTTL     time.Duration
}

type HebcalConfig struct {
	BaseURL  string
	CacheTTL time.Duration
	Israel   bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	// ChatIDs maps a participant name to their private chat with the bot.
	ChatIDs map[string]int64
}

type NotifyConfig struct {
	Channel     string
	SNSTopicARN string
}

type ReminderConfig struct {
	ScanSpec   string
	DigestSpec string
	Window     time.Duration
}

type AssistantConfig struct {
	RateLimitPerMin int
	Humor           bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/bnapp/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/bnapp/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := read()
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Watch calls onChange with the reloaded configuration every time the config
// file changes. Invalid edits are reported through onError and ignored.
func Watch(onChange func(*Config), onError func(error)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg := read()
		if err := validate(cfg); err != nil {
			if onError != nil {
				onError(fmt.Errorf("config reload %s: %w", e.Name, err))
			}
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
}

func read() *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Store.Driver = strings.ToLower(viper.GetString("store.driver"))
	cfg.Store.SQLitePath = viper.GetString("store.sqlite_path")
	cfg.Store.BusyTimeout = viper.GetDuration("store.busy_timeout")
	cfg.Firebase.DatabaseURL = viper.GetString("firebase.database_url")
	cfg.Firebase.AuthToken = viper.GetString("firebase.auth_token")

	// App
	cfg.App.DefaultViewer = viper.GetString("app.default_viewer")
	cfg.App.Timezone = viper.GetString("app.timezone")
	cfg.App.DefaultCity = viper.GetString("app.default_city")
	cfg.App.AllowedOrigins = splitList(viper.GetString("app.allowed_origins"))

	// External services
	cfg.Weather.GeocodingURL = viper.GetString("weather.geocoding_url")
	cfg.Weather.ForecastURL = viper.GetString("weather.forecast_url")
	cfg.Weather.CacheTTL = viper.GetDuration("weather.cache_ttl")
	cfg.Hebcal.BaseURL = viper.GetString("hebcal.base_url")
	cfg.Hebcal.CacheTTL = viper.GetDuration("hebcal.cache_ttl")
	cfg.Hebcal.Israel = viper.GetBool("hebcal.israel")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Telegram.ChatIDs = map[string]int64{
		"binyamin": viper.GetInt64("telegram.chat_ids.binyamin"),
		"nana":     viper.GetInt64("telegram.chat_ids.nana"),
	}

	// Background work
	cfg.Notify.Channel = strings.ToLower(viper.GetString("notify.channel"))
	cfg.Notify.SNSTopicARN = viper.GetString("notify.sns_topic_arn")
	cfg.Reminder.ScanSpec = viper.GetString("reminder.scan_spec")
	cfg.Reminder.DigestSpec = viper.GetString("reminder.digest_spec")
	cfg.Reminder.Window = viper.GetDuration("reminder.window")

	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")
	cfg.Assistant.Humor = viper.GetBool("assistant.humor")

	return cfg
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("store.driver", StoreDriverSQLite)
	viper.SetDefault("store.sqlite_path", "data/bnapp.db")
	viper.SetDefault("store.busy_timeout", "5s")

	viper.SetDefault("app.default_viewer", "binyamin")
	viper.SetDefault("app.timezone", "Asia/Jerusalem")
	viper.SetDefault("app.default_city", "ירושלים")

	viper.SetDefault("weather.cache_ttl", "30m")
	viper.SetDefault("hebcal.cache_ttl", "12h")
	viper.SetDefault("hebcal.israel", true)
	viper.SetDefault("google_calendar.token_path", "token.json")

	viper.SetDefault("notify.channel", NotifyChannelTelegram)
	viper.SetDefault("reminder.scan_spec", "* * * * *")
	viper.SetDefault("reminder.digest_spec", "30 7 * * *")
	viper.SetDefault("reminder.window", "1m")

	viper.SetDefault("assistant.rate_limit_per_min", 30)
	viper.SetDefault("assistant.humor", true)
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Store.Driver {
	case StoreDriverSQLite:
		if strings.TrimSpace(cfg.Store.SQLitePath) == "" {
			errs = append(errs, errors.New("store.sqlite_path is required for the sqlite driver"))
		}
	case StoreDriverRTDB:
		if strings.TrimSpace(cfg.Firebase.DatabaseURL) == "" {
			errs = append(errs, errors.New("firebase.database_url is required for the rtdb driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store.driver %q", cfg.Store.Driver))
	}

	switch cfg.Notify.Channel {
	case NotifyChannelTelegram, "":
	case NotifyChannelSNS, NotifyChannelAll:
		if cfg.Notify.SNSTopicARN == "" {
			errs = append(errs, fmt.Errorf("notify.sns_topic_arn is required for the %s channel", cfg.Notify.Channel))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown notify.channel %q", cfg.Notify.Channel))
	}

	if cfg.HTTPServer.Port <= 0 {
		errs = append(errs, errors.New("http_server.port must be positive"))
	}
	return errors.Join(errs...)
}

// splitList splits a comma separated value since env vars cannot carry arrays.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
