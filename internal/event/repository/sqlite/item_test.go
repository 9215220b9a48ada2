package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	repo "bnapp/internal/event/repository"
	"bnapp/internal/event/repository/sqlite"
	"bnapp/internal/model"
	"bnapp/pkg/log"
	"bnapp/pkg/sqlitedb"
)

func newRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := sqlitedb.Open(context.Background(), sqlitedb.Config{Path: filepath.Join(t.TempDir(), "bnapp.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop())
}

func TestItemLifecycle(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()
	dur := 60

	created, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Item: model.Item{
			DateKey: "2024-05-01", Type: model.ItemTypeEvent, Owner: model.OwnerNana,
			Title: "Dentist", StartTime: "09:00", EndTime: "10:00", Duration: &dur,
			Recurring: model.RecurrenceNone, Urgency: model.UrgencyNone,
		},
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := r.GetItem(ctx, "2024-05-01", created.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Title != "Dentist" || got.Duration == nil || *got.Duration != 60 || got.ReminderMinutes != nil {
		t.Errorf("unexpected item %+v", got)
	}

	missing, err := r.GetItem(ctx, "2024-05-02", created.ID)
	if err != nil || missing.ID != "" {
		t.Errorf("item must be addressed by its date key, got %+v, %v", missing, err)
	}

	got.Title = "Dentist (moved)"
	got.Recurring = model.RecurrenceWeekly
	if _, err := r.UpdateItem(ctx, repo.UpdateItemOptions{Item: got}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	rec, err := r.ListRecurring(ctx)
	if err != nil || len(rec) != 1 || rec[0].Title != "Dentist (moved)" {
		t.Errorf("ListRecurring = %+v, %v", rec, err)
	}

	day, err := r.ListDay(ctx, "2024-05-01")
	if err != nil || len(day) != 1 {
		t.Fatalf("ListDay = %+v, %v", day, err)
	}

	if err := r.DeleteItem(ctx, "2024-05-01", created.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	all, err := r.ListAll(ctx)
	if err != nil || len(all) != 0 {
		t.Errorf("ListAll after delete = %+v, %v", all, err)
	}
}

func TestCreateItem_KeepsGivenID(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	item, err := r.CreateItem(ctx, repo.CreateItemOptions{
		Item: model.Item{ID: "fixed", DateKey: model.UndatedKey, Type: model.ItemTypeTask, Title: "Call mom"},
	})
	if err != nil || item.ID != "fixed" {
		t.Fatalf("CreateItem = %+v, %v", item, err)
	}

	all, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all[model.UndatedKey]) != 1 {
		t.Errorf("expected one undated item, got %+v", all)
	}
}

func TestHoliday(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	if h, err := r.GetHoliday(ctx, "2024-05-01"); err != nil || h {
		t.Fatalf("GetHoliday default = %v, %v", h, err)
	}
	if err := r.SetHoliday(ctx, "2024-05-01", true); err != nil {
		t.Fatalf("SetHoliday: %v", err)
	}
	if h, _ := r.GetHoliday(ctx, "2024-05-01"); !h {
		t.Error("expected holiday after set")
	}
	r.SetHoliday(ctx, "2024-06-01", true)
	if got, err := r.ListHolidays(ctx, "2024-05-01", "2024-05-31"); err != nil || len(got) != 1 || !got["2024-05-01"] {
		t.Errorf("ListHolidays = %v, %v", got, err)
	}
	if err := r.SetHoliday(ctx, "2024-05-01", false); err != nil {
		t.Fatalf("SetHoliday: %v", err)
	}
	if h, _ := r.GetHoliday(ctx, "2024-05-01"); h {
		t.Error("expected flag cleared")
	}
}
