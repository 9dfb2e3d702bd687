// Package task defines the recurring responsibility record.
package task

import (
	"fmt"
	"strings"

	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

// Priority orders how urgently a responsibility needs attention.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low"
)

// ParsePriority converts a string to a Priority, defaulting empty to medium.
func ParsePriority(raw string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case High:
		return High, nil
	case Medium, "":
		return Medium, nil
	case Low:
		return Low, nil
	}
	return Medium, fmt.Errorf("task: unknown priority %q", raw)
}

func New(title string, due timeutil.Timestamp, priority Priority) *Task {
	return &Task{
		Title:    title,
		DueDate:  due,
		Priority: priority,
	}
}

type Task struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	DueDate         timeutil.Timestamp `json:"dueDate"`
	IsCompleted     bool               `json:"isCompleted,omitempty"`
	Priority        Priority           `json:"priority"`
	IsRecurring     bool               `json:"isRecurring,omitempty"`
	RecurringMonths int                `json:"recurringMonths,omitempty"`
}

// Validate checks the store invariants before a record is accepted. A
// recurring task with no interval gets the one-month default rather than an
// error.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task: title required")
	}
	switch t.Priority {
	case High, Medium, Low:
	default:
		return fmt.Errorf("task: unknown priority %q", t.Priority)
	}
	if t.IsRecurring && t.RecurringMonths <= 0 {
		t.RecurringMonths = 1
	}
	return nil
}

func (t *Task) String() string {
	return fmt.Sprintf("%s (%s)", t.Title, t.Priority)
}
