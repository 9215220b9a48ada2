package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	repo "bnapp/internal/event/repository"
	"bnapp/internal/model"
	"bnapp/pkg/datemath"
	"bnapp/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo keeps items in memory, keyed like the realtime database tree.
type mockRepo struct {
	items    map[string]map[string]model.Item
	holidays map[string]bool
	seq      int
	fail     bool
	// failCreate and failDeleteKey break single writes.
	failCreate    bool
	failDeleteKey string
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: map[string]map[string]model.Item{}, holidays: map[string]bool{}}
}

var errDB = errors.New("db error")

func (m *mockRepo) put(item model.Item) model.Item {
	if item.ID == "" {
		m.seq++
		item.ID = fmt.Sprintf("id%03d", m.seq)
	}
	if m.items[item.DateKey] == nil {
		m.items[item.DateKey] = map[string]model.Item{}
	}
	m.items[item.DateKey][item.ID] = item
	return item
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	if m.fail || m.failCreate {
		return model.Item{}, errDB
	}
	return m.put(opt.Item), nil
}

func (m *mockRepo) GetItem(ctx context.Context, dateKey, id string) (model.Item, error) {
	if m.fail {
		return model.Item{}, errDB
	}
	return m.items[dateKey][id], nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	if _, ok := m.items[opt.Item.DateKey][opt.Item.ID]; !ok {
		return model.Item{}, nil
	}
	return m.put(opt.Item), nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, dateKey, id string) error {
	if dateKey == m.failDeleteKey {
		return errDB
	}
	delete(m.items[dateKey], id)
	if len(m.items[dateKey]) == 0 {
		delete(m.items, dateKey)
	}
	return nil
}

func (m *mockRepo) ListDay(ctx context.Context, dateKey string) ([]model.Item, error) {
	if m.fail {
		return nil, errDB
	}
	return sorted(m.items[dateKey]), nil
}

func (m *mockRepo) ListAll(ctx context.Context) (map[string][]model.Item, error) {
	if m.fail {
		return nil, errDB
	}
	out := map[string][]model.Item{}
	for dk, items := range m.items {
		out[dk] = sorted(items)
	}
	return out, nil
}

func (m *mockRepo) ListRecurring(ctx context.Context) ([]model.Item, error) {
	var out []model.Item
	for _, items := range m.items {
		for _, it := range sorted(items) {
			if it.IsRecurring() {
				out = append(out, it)
			}
		}
	}
	return out, nil
}

func (m *mockRepo) GetHoliday(ctx context.Context, dateKey string) (bool, error) {
	return m.holidays[dateKey], nil
}

func (m *mockRepo) SetHoliday(ctx context.Context, dateKey string, holiday bool) error {
	m.holidays[dateKey] = holiday
	return nil
}

func (m *mockRepo) ListHolidays(ctx context.Context, fromKey, toKey string) (map[string]bool, error) {
	if m.fail {
		return nil, errDB
	}
	out := map[string]bool{}
	for dk, h := range m.holidays {
		if h && dk >= fromKey && dk <= toKey {
			out[dk] = true
		}
	}
	return out, nil
}

func sorted(items map[string]model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type mockMirror struct {
	created []gcalendar.CreateEventRequest
	deleted []string
	err     error
}

func (m *mockMirror) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: fmt.Sprintf("g%d", len(m.created))}, nil
}

func (m *mockMirror) DeleteEvent(ctx context.Context, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return nil
}

func newTestUseCase(t *testing.T, r *mockRepo, mirror Mirror) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(&mockLogger{}, r, dates, mirror)
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

var binyamin = model.Scope{Viewer: model.OwnerBinyamin}
