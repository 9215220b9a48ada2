package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Driver != StoreDriverSQLite || cfg.Store.BusyTimeout != 5*time.Second {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.App.Timezone != "Asia/Jerusalem" || cfg.App.DefaultViewer != "binyamin" {
		t.Errorf("app = %+v", cfg.App)
	}
	if cfg.Reminder.Window != time.Minute || cfg.Assistant.RateLimitPerMin != 30 {
		t.Errorf("reminder = %+v, assistant = %+v", cfg.Reminder, cfg.Assistant)
	}
}

func TestLoad_Env(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "RTDB")
	t.Setenv("FIREBASE_DATABASE_URL", "https://bnapp.firebaseio.com")
	t.Setenv("APP_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("TELEGRAM_CHAT_IDS_NANA", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Driver != StoreDriverRTDB {
		t.Errorf("driver = %q", cfg.Store.Driver)
	}
	if len(cfg.App.AllowedOrigins) != 2 || cfg.App.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", cfg.App.AllowedOrigins)
	}
	if cfg.Telegram.ChatIDs["nana"] != 42 {
		t.Errorf("chat ids = %v", cfg.Telegram.ChatIDs)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080},
			Store:      StoreConfig{Driver: StoreDriverSQLite, SQLitePath: "x.db"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "postgres" }, wantErr: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.Store.SQLitePath = " " }, wantErr: true},
		{name: "rtdb without url", mutate: func(c *Config) { c.Store.Driver = StoreDriverRTDB }, wantErr: true},
		{name: "sns without topic", mutate: func(c *Config) { c.Notify.Channel = NotifyChannelSNS }, wantErr: true},
		{name: "all without topic", mutate: func(c *Config) { c.Notify.Channel = NotifyChannelAll }, wantErr: true},
		{name: "all with topic", mutate: func(c *Config) { c.Notify.Channel = NotifyChannelAll; c.Notify.SNSTopicARN = "arn:aws:sns:x" }},
		{name: "unknown channel", mutate: func(c *Config) { c.Notify.Channel = "pigeon" }, wantErr: true},
		{name: "zero port", mutate: func(c *Config) { c.HTTPServer.Port = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := validate(cfg); (err != nil) != tt.wantErr {
				t.Errorf("validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
