package subscription

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

func TestMonthlyAmountNormalizesYearly(t *testing.T) {
	s := New("Backups", 1200, USD, Yearly, timeutil.Timestamp{})
	if got := s.MonthlyAmount(); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := s.AnnualAmount(); got != 1200 {
		t.Fatalf("expected 1200, got %v", got)
	}
}

func TestAnnualAmountNormalizesMonthly(t *testing.T) {
	s := New("Streaming", 100, USD, Monthly, timeutil.Timestamp{})
	if got := s.MonthlyAmount(); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := s.AnnualAmount(); got != 1200 {
		t.Fatalf("expected 1200, got %v", got)
	}
}

func TestValidateRejectsNegativeAmount(t *testing.T) {
	s := New("Broken", -1, USD, Monthly, timeutil.Timestamp{})
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestValidateRejectsUnknownCycle(t *testing.T) {
	s := New("Broken", 1, USD, Monthly, timeutil.Timestamp{})
	s.BillingCycle = "weekly"
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for unknown cycle")
	}
}

func TestParseCycle(t *testing.T) {
	if c, err := ParseCycle("Yearly"); err != nil || c != Yearly {
		t.Fatalf("expected yearly, got %v (%v)", c, err)
	}
	if c, err := ParseCycle(""); err != nil || c != Monthly {
		t.Fatalf("expected monthly default, got %v (%v)", c, err)
	}
	if _, err := ParseCycle("weekly"); err == nil {
		t.Fatalf("expected error for unsupported cycle")
	}
}

func TestParseCurrency(t *testing.T) {
	if c, err := ParseCurrency("try"); err != nil || c != TRY {
		t.Fatalf("expected TRY, got %v (%v)", c, err)
	}
	if _, err := ParseCurrency("XBT"); err == nil {
		t.Fatalf("expected error for unsupported currency")
	}
}

func TestSubscriptionJSONRoundTrip(t *testing.T) {
	next := timeutil.Timestamp{Time: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)}
	s := New("Music", 9.99, EUR, Monthly, next)
	s.ID = "abc123"
	s.Category = "music"

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Subscription
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Name != "Music" || back.Currency != EUR || !back.NextBillingDate.Equal(next.Time) {
		t.Fatalf("round trip mismatch: %+v", back)
	}
	if back.PaidDate != nil {
		t.Fatalf("expected nil paid date")
	}
}
