// Package store connects the configured backend and builds every repository on it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"bnapp/config"
	eventRepo "bnapp/internal/event/repository"
	eventRTDB "bnapp/internal/event/repository/rtdb"
	eventSQLite "bnapp/internal/event/repository/sqlite"
	gihariRepo "bnapp/internal/gihari/repository"
	gihariRTDB "bnapp/internal/gihari/repository/rtdb"
	gihariSQLite "bnapp/internal/gihari/repository/sqlite"
	settingsRepo "bnapp/internal/settings/repository"
	settingsRTDB "bnapp/internal/settings/repository/rtdb"
	settingsSQLite "bnapp/internal/settings/repository/sqlite"
	shoppingRepo "bnapp/internal/shopping/repository"
	shoppingRTDB "bnapp/internal/shopping/repository/rtdb"
	shoppingSQLite "bnapp/internal/shopping/repository/sqlite"
	"bnapp/pkg/log"
	"bnapp/pkg/rtdb"
	"bnapp/pkg/sqlitedb"
)

// Repositories is the set of repositories backed by one store.
type Repositories struct {
	Driver   string
	Event    eventRepo.Repository
	Shopping shoppingRepo.Repository
	Settings settingsRepo.Repository
	Gihari   gihariRepo.Repository

	ping  func(ctx context.Context) error
	close func() error
}

// Connect opens the store named by cfg.Store.Driver.
func Connect(ctx context.Context, cfg *config.Config, l log.Logger) (*Repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		db, err := sqlitedb.Open(ctx, sqlitedb.Config{Path: cfg.Store.SQLitePath, BusyTimeout: cfg.Store.BusyTimeout})
		if err != nil {
			return nil, err
		}
		l.Infof(ctx, "Connected to SQLite at %s", cfg.Store.SQLitePath)
		return newSQLite(db, l), nil

	case config.StoreDriverRTDB:
		client := rtdb.NewClient(cfg.Firebase.DatabaseURL, cfg.Firebase.AuthToken)
		l.Infof(ctx, "Using Firebase Realtime Database at %s", cfg.Firebase.DatabaseURL)
		return newRTDB(client, l), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func newSQLite(db *sql.DB, l log.Logger) *Repositories {
	return &Repositories{
		Driver:   config.StoreDriverSQLite,
		Event:    eventSQLite.New(db, l),
		Shopping: shoppingSQLite.New(db, l),
		Settings: settingsSQLite.New(db, l),
		Gihari:   gihariSQLite.New(db, l),
		ping:     db.PingContext,
		close:    db.Close,
	}
}

func newRTDB(client *rtdb.Client, l log.Logger) *Repositories {
	return &Repositories{
		Driver:   config.StoreDriverRTDB,
		Event:    eventRTDB.New(client, l),
		Shopping: shoppingRTDB.New(client, l),
		Settings: settingsRTDB.New(client, l),
		Gihari:   gihariRTDB.New(client, l),
		ping: func(ctx context.Context) error {
			_, err := client.GetShallow(ctx, "settings")
			return err
		},
		close: func() error { return nil },
	}
}

// Ping reports whether the store answers.
func (r *Repositories) Ping(ctx context.Context) error {
	return r.ping(ctx)
}

// Close releases the underlying connection.
func (r *Repositories) Close() error {
	return r.close()
}
