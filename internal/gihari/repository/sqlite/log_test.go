package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	repo "bnapp/internal/gihari/repository"
	"bnapp/internal/gihari/repository/sqlite"
	"bnapp/internal/model"
	"bnapp/pkg/log"
	"bnapp/pkg/sqlitedb"
)

func TestAppendLog(t *testing.T) {
	db, err := sqlitedb.Open(context.Background(), sqlitedb.Config{Path: filepath.Join(t.TempDir(), "bnapp.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	r := sqlite.New(db, log.NewNop())
	err = r.AppendLog(context.Background(), repo.LogOptions{
		At: time.UnixMilli(1714550400000), Owner: model.OwnerBinyamin, Source: "telegram",
		Text: "תוסיף לי ריצה", Intent: "add_event", Reply: "קבעתי",
	})
	if err != nil {
		t.Fatalf("AppendLog: %v", err)
	}

	var owner, source, intent string
	var at int64
	row := db.QueryRow(`SELECT at, owner, source, intent FROM assistant_logs`)
	if err := row.Scan(&at, &owner, &source, &intent); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if at != 1714550400000 || owner != "binyamin" || source != "telegram" || intent != "add_event" {
		t.Errorf("got %d %s %s %s", at, owner, source, intent)
	}
}
