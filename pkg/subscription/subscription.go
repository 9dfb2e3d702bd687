// Package subscription defines the recurring payment record.
package subscription

import (
	"fmt"
	"strings"

	"github.com/luxtra-app/luxtra/pkg/category"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

// BillingCycle is how often a subscription charges.
type BillingCycle string

const (
	Monthly BillingCycle = "monthly"
	Yearly  BillingCycle = "yearly"
)

// ParseCycle converts a string to a BillingCycle.
func ParseCycle(raw string) (BillingCycle, error) {
	switch BillingCycle(strings.ToLower(strings.TrimSpace(raw))) {
	case Monthly, "":
		return Monthly, nil
	case Yearly:
		return Yearly, nil
	}
	return Monthly, fmt.Errorf("subscription: unknown billing cycle %q", raw)
}

func New(name string, amount float64, currency Currency, cycle BillingCycle, next timeutil.Timestamp) *Subscription {
	return &Subscription{
		Name:            name,
		Amount:          amount,
		Currency:        currency,
		BillingCycle:    cycle,
		NextBillingDate: next,
		Category:        category.DefaultKey,
	}
}

type Subscription struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Amount          float64            `json:"amount"`
	Currency        Currency           `json:"currency"`
	BillingCycle    BillingCycle       `json:"billingCycle"`
	NextBillingDate timeutil.Timestamp `json:"nextBillingDate"`
	Category        string             `json:"category,omitempty"`
	IsPaid          bool               `json:"isPaid,omitempty"`
	PaidDate        *timeutil.Timestamp `json:"paidDate,omitempty"`
	ReminderDays    int                `json:"reminderDays,omitempty"`
}

// MonthlyAmount normalizes the charge to a per-month figure.
func (s *Subscription) MonthlyAmount() float64 {
	if s.BillingCycle == Yearly {
		return s.Amount / 12
	}
	return s.Amount
}

// AnnualAmount normalizes the charge to a per-year figure.
func (s *Subscription) AnnualAmount() float64 {
	if s.BillingCycle == Yearly {
		return s.Amount
	}
	return s.Amount * 12
}

// Validate checks the store invariants before a record is accepted.
func (s *Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("subscription: name required")
	}
	if s.Amount < 0 {
		return fmt.Errorf("subscription: amount must not be negative, got %v", s.Amount)
	}
	if s.BillingCycle != Monthly && s.BillingCycle != Yearly {
		return fmt.Errorf("subscription: unknown billing cycle %q", s.BillingCycle)
	}
	if !s.Currency.Valid() {
		return fmt.Errorf("subscription: unknown currency %q", s.Currency)
	}
	return nil
}

func (s *Subscription) String() string {
	return fmt.Sprintf("%s %s/%s", s.Name, s.Currency.Format(s.Amount), s.BillingCycle)
}
