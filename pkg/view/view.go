// Package view builds read-only projections over subscriptions and tasks.
//
// Every function here is a pure function of its inputs plus an explicit "now";
// nothing reads the clock or touches storage, so callers can rebuild views on
// every render and tests can inject fixed timestamps. Returned items are fresh
// values, never aliases of stored records.
package view

import (
	"time"

	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
)

// Kind tags a timeline item with the entity it was projected from.
type Kind string

const (
	KindPayment        Kind = "payment"
	KindResponsibility Kind = "responsibility"
)

// Item is the normalized union of a subscription charge and a task due date.
type Item struct {
	Kind     Kind
	ID       string
	Title    string
	Date     time.Time
	Category string

	// Payment fields.
	Amount   float64
	Currency subscription.Currency
	IsPaid   bool

	// Responsibility fields.
	Priority        task.Priority
	IsRecurring     bool
	RecurringMonths int
}

func paymentItem(s *subscription.Subscription) Item {
	return Item{
		Kind:     KindPayment,
		ID:       s.ID,
		Title:    s.Name,
		Date:     s.NextBillingDate.Time,
		Category: s.Category,
		Amount:   s.Amount,
		Currency: s.Currency,
		IsPaid:   s.IsPaid,
	}
}

func responsibilityItem(t *task.Task) Item {
	return Item{
		Kind:            KindResponsibility,
		ID:              t.ID,
		Title:           t.Title,
		Date:            t.DueDate.Time,
		Priority:        t.Priority,
		IsRecurring:     t.IsRecurring,
		RecurringMonths: t.RecurringMonths,
	}
}

// Items merges all subscriptions and every not-yet-completed task into
// timeline items, unsorted.
func Items(subs []*subscription.Subscription, tasks []*task.Task) []Item {
	items := make([]Item, 0, len(subs)+len(tasks))
	for _, s := range subs {
		items = append(items, paymentItem(s))
	}
	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}
		items = append(items, responsibilityItem(t))
	}
	return items
}
