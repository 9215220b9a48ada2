package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bnapp/internal/calendar"
	"bnapp/internal/event"
	"bnapp/internal/model"
	"bnapp/internal/settings"
	"bnapp/pkg/datemath"
	"bnapp/pkg/hebcal"
	"bnapp/pkg/log"
)

type mockEvents struct{}

func (m *mockEvents) ListRange(ctx context.Context, sc model.Scope, from, to time.Time) ([]event.DayOutput, error) {
	var out []event.DayOutput
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dk := d.Format("2006-01-02")
		day := event.DayOutput{DateKey: dk}
		if dk == "2024-05-14" {
			day.Items = []model.Item{{ID: "a"}, {ID: "b"}}
			day.Holiday = true
		}
		out = append(out, day)
	}
	return out, nil
}

type mockSettings struct {
	s   settings.Settings
	err error
}

func (m *mockSettings) Get(ctx context.Context) (settings.Settings, error) { return m.s, m.err }
func (m *mockSettings) SaveCity(ctx context.Context, city string) (settings.Settings, error) {
	return m.s, m.err
}
func (m *mockSettings) EnsureCoords(ctx context.Context) (settings.Settings, error) { return m.s, m.err }

type mockHebcal struct {
	mu           sync.Mutex
	converts     int
	holidayCalls int
	shabbatCalls int
	convertErr   error
}

func (m *mockHebcal) Convert(ctx context.Context, date time.Time) (*hebcal.HebrewDate, error) {
	m.mu.Lock()
	m.converts++
	m.mu.Unlock()
	if m.convertErr != nil {
		return nil, m.convertErr
	}
	return &hebcal.HebrewDate{Hebrew: "יום " + date.Format("02")}, nil
}

func (m *mockHebcal) Holidays(ctx context.Context, year int, israel bool) (map[string]string, error) {
	m.holidayCalls++
	return map[string]string{"2024-05-14": "יום העצמאות"}, nil
}

func (m *mockHebcal) Shabbat(ctx context.Context, lat, lon float64, tzid string, friday time.Time) (*hebcal.ShabbatTimes, error) {
	m.shabbatCalls++
	candles := time.Date(friday.Year(), friday.Month(), friday.Day(), 19, 5, 0, 0, time.UTC)
	havdalah := candles.Add(25 * time.Hour)
	return &hebcal.ShabbatTimes{CandleLighting: &candles, Havdalah: &havdalah}, nil
}

func fp(v float64) *float64 { return &v }

func newTestUseCase(t *testing.T, hc Hebcal, s *mockSettings) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(log.NewNop(), &mockEvents{}, s, hc, dates, Config{Israel: true})
	uc.now = func() time.Time { return time.Date(2024, 5, 9, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestMonth(t *testing.T) {
	hc := &mockHebcal{}
	s := &mockSettings{s: settings.Settings{City: "ירושלים", Lat: fp(31.77), Lon: fp(35.21)}}
	uc := newTestUseCase(t, hc, s)
	sc := model.Scope{Viewer: model.OwnerNana}

	out, err := uc.Month(context.Background(), sc, 2024, 5)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if len(out.Days) != 31 || out.LeadingBlanks != 3 {
		t.Fatalf("got %d days, %d blanks", len(out.Days), out.LeadingBlanks)
	}

	d14 := out.Days[13]
	if !d14.HasEvents || d14.ItemCount != 2 || !d14.DayOff || d14.HolidayName != "יום העצמאות" {
		t.Errorf("2024-05-14 = %+v", d14)
	}
	if !out.Days[8].Today {
		t.Errorf("expected 2024-05-09 flagged as today")
	}
	if out.Days[0].HebrewDate != "יום 01" {
		t.Errorf("hebrew date = %q", out.Days[0].HebrewDate)
	}
	if fri := out.Days[9]; fri.CandleLighting != "19:05" || out.Days[10].Havdalah != "20:05" {
		t.Errorf("shabbat times = %q / %q", fri.CandleLighting, out.Days[10].Havdalah)
	}
	if hc.shabbatCalls != 5 {
		t.Errorf("shabbat calls = %d, want one per Friday", hc.shabbatCalls)
	}

	if _, err := uc.Month(context.Background(), sc, 2024, 5); err != nil {
		t.Fatalf("second Month: %v", err)
	}
	if hc.converts != 31 || hc.holidayCalls != 1 || hc.shabbatCalls != 5 {
		t.Errorf("cache missed: converts=%d holidays=%d shabbat=%d", hc.converts, hc.holidayCalls, hc.shabbatCalls)
	}
}

func TestMonth_BestEffort(t *testing.T) {
	hc := &mockHebcal{convertErr: errors.New("hebcal down")}
	uc := newTestUseCase(t, hc, &mockSettings{err: settings.ErrGeocodeFailed})

	out, err := uc.Month(context.Background(), model.Scope{Viewer: model.OwnerBinyamin}, 2024, 2)
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if len(out.Days) != 29 {
		t.Fatalf("leap February has %d days", len(out.Days))
	}
	for _, d := range out.Days {
		if d.HebrewDate != "" || d.CandleLighting != "" {
			t.Fatalf("expected empty hebcal fields, got %+v", d)
		}
	}
}

func TestMonth_Invalid(t *testing.T) {
	uc := newTestUseCase(t, nil, &mockSettings{})
	for _, m := range []int{0, 13} {
		if _, err := uc.Month(context.Background(), model.Scope{}, 2024, m); !errors.Is(err, calendar.ErrInvalidMonth) {
			t.Errorf("month %d: err = %v", m, err)
		}
	}
}
