// Package timeline hosts the Bubble Tea program for the interactive timeline.
//
// The program renders the same six urgency buckets as the upcoming command and
// lets the user toggle paid/completed state in place. A store watcher keeps
// the view current when another process writes to the same database.
package timeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/store"
	"github.com/luxtra-app/luxtra/pkg/view"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	countStyle    = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	settledStyle  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	labelStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Italic(true)
)

// row is one rendered line: a bucket heading or an item under it.
type row struct {
	heading string
	count   int
	item    view.Item
}

func (r row) isHeading() bool {
	return r.heading != ""
}

type refreshMsg struct{}

type storeEventMsg struct {
	event store.Event
	ok    bool
}

// Model is the Bubble Tea model for the timeline surface.
type Model struct {
	service *app.Service
	now     func() time.Time

	events <-chan store.Event

	rows   []row
	cursor int
	width  int
	height int
	status string
	err    error
}

// New constructs a timeline model over the provided service.
func New(service *app.Service) *Model {
	return &Model{
		service: service,
		now:     time.Now,
		status:  "Ready",
	}
}

// Run launches the program in the alternate screen until the user quits.
func Run(service *app.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(service)
	if events, err := service.Persistence.Watch(ctx); err == nil {
		m.events = events
	} else {
		m.status = fmt.Sprintf("live refresh unavailable: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return refreshMsg{} }, m.listen())
}

// listen blocks on the watcher channel and forwards one event.
func (m *Model) listen() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.events
		return storeEventMsg{event: ev, ok: ok}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height

	case refreshMsg:
		m.rebuild()

	case storeEventMsg:
		if !v.ok {
			m.status = "live refresh stopped"
			m.events = nil
			return m, nil
		}
		if err := m.service.Reload(context.Background()); err != nil {
			m.err = err
			return m, m.listen()
		}
		m.rebuild()
		m.status = "refreshed " + m.now().Format("15:04:05")
		return m, m.listen()

	case tea.KeyMsg:
		switch v.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "down", "j":
			m.move(1)
		case "up", "k":
			m.move(-1)
		case "r":
			if err := m.service.Reload(context.Background()); err != nil {
				m.err = err
				return m, nil
			}
			m.rebuild()
			m.status = "refreshed"
		case "p":
			m.togglePaid()
		case "x", "d":
			m.toggleDone()
		}
	}
	return m, nil
}

func (m *Model) rebuild() {
	ctx := context.Background()
	subs, err := m.service.Subscriptions(ctx)
	if err != nil {
		m.err = err
		return
	}
	tasks, err := m.service.Tasks(ctx)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.rows = rowsFromBuckets(view.Timeline(subs, tasks, m.now()))
	m.cursor = clampToItem(m.rows, m.cursor)
}

// rowsFromBuckets flattens the non-empty buckets into heading and item rows.
func rowsFromBuckets(b view.Buckets) []row {
	rows := make([]row, 0, b.Len()+6)
	for _, name := range view.BucketOrder() {
		items := b.Get(name)
		if len(items) == 0 {
			continue
		}
		rows = append(rows, row{heading: bucketHeading(name), count: len(items)})
		for _, item := range items {
			rows = append(rows, row{item: item})
		}
	}
	return rows
}

// clampToItem snaps the cursor onto the nearest selectable row.
func clampToItem(rows []row, cursor int) int {
	if len(rows) == 0 {
		return 0
	}
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	for i := cursor; i < len(rows); i++ {
		if !rows[i].isHeading() {
			return i
		}
	}
	for i := cursor; i >= 0; i-- {
		if !rows[i].isHeading() {
			return i
		}
	}
	return 0
}

func (m *Model) move(delta int) {
	i := m.cursor + delta
	for i >= 0 && i < len(m.rows) {
		if !m.rows[i].isHeading() {
			m.cursor = i
			return
		}
		i += delta
	}
}

func (m *Model) selected() (view.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) || m.rows[m.cursor].isHeading() {
		return view.Item{}, false
	}
	return m.rows[m.cursor].item, true
}

func (m *Model) togglePaid() {
	item, ok := m.selected()
	if !ok || item.Kind != view.KindPayment {
		m.status = "select a payment to toggle paid"
		return
	}
	sub, err := m.service.MarkSubscriptionPaid(context.Background(), item.ID)
	if err != nil {
		m.err = err
		return
	}
	if sub == nil {
		m.status = "nothing matched " + item.ID
		return
	}
	m.rebuild()
	if sub.IsPaid {
		m.status = sub.Name + " marked paid"
	} else {
		m.status = sub.Name + " marked unpaid"
	}
}

func (m *Model) toggleDone() {
	item, ok := m.selected()
	if !ok || item.Kind != view.KindResponsibility {
		m.status = "select a responsibility to toggle done"
		return
	}
	t, err := m.service.ToggleTask(context.Background(), item.ID)
	if err != nil {
		m.err = err
		return
	}
	if t == nil {
		m.status = "nothing matched " + item.ID
		return
	}
	m.rebuild()
	if t.IsCompleted {
		m.status = t.Title + " completed"
	} else {
		m.status = t.Title + " reopened"
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Timeline"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(overdueStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(labelStyle.Render("nothing tracked yet"))
		b.WriteString("\n")
	}

	now := m.now()
	start, end := m.visible()
	for i := start; i < end; i++ {
		r := m.rows[i]
		if r.isHeading() {
			b.WriteString(headingStyle.Render(r.heading))
			b.WriteString(countStyle.Render(fmt.Sprintf(" %d", r.count)))
			b.WriteString("\n")
			continue
		}
		line := m.renderItem(r.item, now)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move  p paid  x done  r refresh  q quit"))
	return b.String()
}

// visible windows the rows around the cursor when the terminal is short.
func (m *Model) visible() (int, int) {
	max := m.height - 6
	if max <= 0 || len(m.rows) <= max {
		return 0, len(m.rows)
	}
	start := m.cursor - max/2
	if start < 0 {
		start = 0
	}
	end := start + max
	if end > len(m.rows) {
		end = len(m.rows)
		start = end - max
	}
	return start, end
}

func (m *Model) renderItem(item view.Item, now time.Time) string {
	label := view.DueLabel(item.Date, now)
	switch item.Kind {
	case view.KindPayment:
		line := fmt.Sprintf("%s %s (%s)", item.Title, item.Currency.Format(item.Amount), label)
		if item.IsPaid {
			return settledStyle.Render(line)
		}
		if label == "overdue" {
			return overdueStyle.Render(line)
		}
		return line
	default:
		line := fmt.Sprintf("%s (%s)", item.Title, label)
		if label == "overdue" {
			return overdueStyle.Render(line)
		}
		return line
	}
}

func bucketHeading(name view.Bucket) string {
	switch name {
	case view.BucketOverdue:
		return "Overdue"
	case view.BucketToday:
		return "Today"
	case view.BucketTomorrow:
		return "Tomorrow"
	case view.BucketThisWeek:
		return "This week"
	case view.BucketThisMonth:
		return "This month"
	}
	return "Later"
}
