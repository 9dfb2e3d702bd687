package task

import (
	"testing"
	"time"

	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

func TestParsePriority(t *testing.T) {
	if p, err := ParsePriority("HIGH"); err != nil || p != High {
		t.Fatalf("expected high, got %v (%v)", p, err)
	}
	if p, err := ParsePriority(""); err != nil || p != Medium {
		t.Fatalf("expected medium default, got %v (%v)", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}

func TestValidateDefaultsRecurringMonths(t *testing.T) {
	due := timeutil.Timestamp{Time: time.Now()}
	tk := New("Renew passport", due, Medium)
	tk.IsRecurring = true
	if err := tk.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.RecurringMonths != 1 {
		t.Fatalf("expected recurring months default of 1, got %d", tk.RecurringMonths)
	}
}

func TestValidateRequiresTitle(t *testing.T) {
	tk := New("  ", timeutil.Timestamp{}, Low)
	if err := tk.Validate(); err == nil {
		t.Fatalf("expected error for empty title")
	}
}
