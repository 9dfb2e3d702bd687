package timeline

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/store"
	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
	"github.com/luxtra-app/luxtra/pkg/view"
)

type memoryPersistence struct {
	subs  map[string]*subscription.Subscription
	tasks map[string]*task.Task
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{
		subs:  make(map[string]*subscription.Subscription),
		tasks: make(map[string]*task.Task),
	}
}

func (m *memoryPersistence) Subscriptions(ctx context.Context) []*subscription.Subscription {
	out := make([]*subscription.Subscription, 0, len(m.subs))
	for _, s := range m.subs {
		c := *s
		out = append(out, &c)
	}
	return out
}

func (m *memoryPersistence) Tasks(ctx context.Context) []*task.Task {
	out := make([]*task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		c := *t
		out = append(out, &c)
	}
	return out
}

func (m *memoryPersistence) StoreSubscription(s *subscription.Subscription) error {
	c := *s
	m.subs[s.ID] = &c
	return nil
}

func (m *memoryPersistence) DeleteSubscription(id string) error {
	delete(m.subs, id)
	return nil
}

func (m *memoryPersistence) StoreTask(t *task.Task) error {
	c := *t
	m.tasks[t.ID] = &c
	return nil
}

func (m *memoryPersistence) DeleteTask(id string) error {
	delete(m.tasks, id)
	return nil
}

func (m *memoryPersistence) Settings() (store.Settings, error) {
	return store.Settings{Currency: subscription.DefaultCurrency}, nil
}

func (m *memoryPersistence) StoreSettings(store.Settings) error { return nil }

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func testNow() time.Time {
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}

func ts(t time.Time) timeutil.Timestamp {
	return timeutil.Timestamp{Time: t}
}

func newTestModel(t *testing.T) (*Model, *memoryPersistence) {
	t.Helper()
	p := newMemoryPersistence()
	now := testNow()

	_ = p.StoreSubscription(&subscription.Subscription{
		ID:              "sub1",
		Name:            "Netflix",
		Amount:          15.99,
		Currency:        subscription.USD,
		BillingCycle:    subscription.Monthly,
		NextBillingDate: ts(now.AddDate(0, 0, -2)),
	})
	_ = p.StoreTask(&task.Task{
		ID:       "task1",
		Title:    "pay rent",
		DueDate:  ts(now),
		Priority: task.High,
	})

	m := New(&app.Service{Persistence: p})
	m.now = testNow
	m.rebuild()
	return m, p
}

func TestRowsFromBuckets(t *testing.T) {
	m, _ := newTestModel(t)

	if len(m.rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(m.rows))
	}
	if m.rows[0].heading != "Overdue" || m.rows[0].count != 1 {
		t.Errorf("row 0 = %+v, expected Overdue heading", m.rows[0])
	}
	if m.rows[1].item.ID != "sub1" {
		t.Errorf("row 1 item = %q, expected sub1", m.rows[1].item.ID)
	}
	if m.rows[2].heading != "Today" {
		t.Errorf("row 2 = %+v, expected Today heading", m.rows[2])
	}
	if m.rows[3].item.ID != "task1" {
		t.Errorf("row 3 item = %q, expected task1", m.rows[3].item.ID)
	}
}

func TestCursorSkipsHeadings(t *testing.T) {
	m, _ := newTestModel(t)

	if m.rows[m.cursor].isHeading() {
		t.Fatalf("initial cursor on a heading row")
	}
	first := m.cursor

	m.move(1)
	if m.rows[m.cursor].isHeading() {
		t.Errorf("cursor landed on a heading after move down")
	}
	if m.cursor == first {
		t.Errorf("cursor did not advance")
	}

	m.move(1) // already at the last item, should stay put
	last := m.cursor
	m.move(1)
	if m.cursor != last {
		t.Errorf("cursor moved past the last item")
	}

	m.move(-1)
	if m.rows[m.cursor].isHeading() {
		t.Errorf("cursor landed on a heading after move up")
	}
}

func TestClampToItem(t *testing.T) {
	rows := []row{
		{heading: "Overdue", count: 1},
		{item: view.Item{ID: "a"}},
		{heading: "Today", count: 1},
		{item: view.Item{ID: "b"}},
	}
	if got := clampToItem(rows, 0); got != 1 {
		t.Errorf("clamp(0) = %d, expected 1", got)
	}
	if got := clampToItem(rows, 2); got != 3 {
		t.Errorf("clamp(2) = %d, expected 3", got)
	}
	if got := clampToItem(rows, 10); got != 3 {
		t.Errorf("clamp(10) = %d, expected 3", got)
	}
	if got := clampToItem(nil, 5); got != 0 {
		t.Errorf("clamp on empty = %d, expected 0", got)
	}
}

func TestTogglePaidFromKeyboard(t *testing.T) {
	m, p := newTestModel(t)

	// Cursor starts on the overdue subscription.
	if _, ok := m.selected(); !ok {
		t.Fatalf("no selection")
	}

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})

	stored, ok := p.subs["sub1"]
	if !ok {
		t.Fatalf("subscription missing from persistence")
	}
	if !stored.IsPaid {
		t.Errorf("expected subscription marked paid after keypress")
	}
}

func TestToggleDoneOnPaymentRefused(t *testing.T) {
	m, p := newTestModel(t)

	// Selection is a payment; x must not complete anything.
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	if p.tasks["task1"].IsCompleted {
		t.Errorf("task toggled while a payment was selected")
	}
}

func TestToggleDone(t *testing.T) {
	m, p := newTestModel(t)

	m.move(1) // onto the task
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	stored, ok := p.tasks["task1"]
	if !ok {
		t.Fatalf("task missing from persistence")
	}
	if !stored.IsCompleted {
		t.Errorf("expected task completed after keypress")
	}
	// Completed tasks drop out of the timeline on rebuild.
	for _, r := range m.rows {
		if !r.isHeading() && r.item.ID == "task1" {
			t.Errorf("completed task still present in rows")
		}
	}
}
