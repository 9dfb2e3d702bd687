// Package app provides the application-state service for tracked records.
//
// Service is the single writer for subscriptions, tasks, and settings. The
// in-memory state it holds is authoritative for the session; persistence and
// widget updates are fire-and-forget side effects whose failures are logged
// and never surfaced to callers.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/luxtra-app/luxtra/pkg/category"
	"github.com/luxtra-app/luxtra/pkg/store"
	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
	"github.com/luxtra-app/luxtra/pkg/view"
	"github.com/luxtra-app/luxtra/pkg/widget"
)

// Service owns the canonical record collections. All mutation goes through
// its methods; UIs and CLIs read through its accessors.
type Service struct {
	Persistence store.Persistence
	Widget      *widget.Writer

	// Now supplies the clock for paid dates and widget snapshots. Tests
	// inject fixed timestamps; nil means time.Now.
	Now func() time.Time

	loaded   bool
	subs     []*subscription.Subscription
	tasks    []*task.Task
	settings store.Settings
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	s.subs = s.Persistence.Subscriptions(ctx)
	s.tasks = s.Persistence.Tasks(ctx)
	settings, err := s.Persistence.Settings()
	if err != nil {
		// Settings are best effort; fall back to defaults for the session.
		fmt.Fprintf(os.Stderr, "app: load settings: %v\n", err)
		settings = store.Settings{Currency: subscription.DefaultCurrency}
	}
	s.settings = settings
	s.loaded = true
	return nil
}

// Reload drops the cached collections so the next read hits persistence.
// Long-lived sessions call this when storage changes underneath them.
func (s *Service) Reload(ctx context.Context) error {
	s.loaded = false
	return s.load(ctx)
}

// Subscriptions returns the current subscription list.
func (s *Service) Subscriptions(ctx context.Context) ([]*subscription.Subscription, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s.subs, nil
}

// Tasks returns the current task list.
func (s *Service) Tasks(ctx context.Context) ([]*task.Task, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s.tasks, nil
}

// Settings returns the persisted preferences.
func (s *Service) Settings(ctx context.Context) (store.Settings, error) {
	if err := s.load(ctx); err != nil {
		return store.Settings{}, err
	}
	return s.settings, nil
}

// UpdateSettings stores the preferences document.
func (s *Service) UpdateSettings(ctx context.Context, settings store.Settings) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	if settings.Currency == "" {
		settings.Currency = subscription.DefaultCurrency
	}
	s.settings = settings
	s.persistSettings()
	return nil
}

// AddSubscription validates and appends a subscription. A missing ID gets a
// random one; the store never checks for duplicates.
func (s *Service) AddSubscription(ctx context.Context, sub *subscription.Subscription) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	if sub == nil {
		return errors.New("app: subscription required")
	}
	sub.Category = category.Normalize(sub.Category)
	if err := sub.Validate(); err != nil {
		return err
	}
	if sub.ID == "" {
		sub.ID = store.NewID()
	}
	s.subs = append(s.subs, sub)
	s.persistSubscription(sub)
	s.pushWidget()
	return nil
}

// RemoveSubscription deletes by id; absent ids are a no-op.
func (s *Service) RemoveSubscription(ctx context.Context, id string) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	kept := s.subs[:0]
	removed := false
	for _, sub := range s.subs {
		if sub.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sub)
	}
	s.subs = kept
	if removed {
		s.deleteSubscription(id)
		s.pushWidget()
	}
	return nil
}

// SubscriptionPatch carries the fields UpdateSubscription shallow-merges.
// Nil fields are left untouched.
type SubscriptionPatch struct {
	Name            *string
	Amount          *float64
	Currency        *subscription.Currency
	BillingCycle    *subscription.BillingCycle
	NextBillingDate *timeutil.Timestamp
	Category        *string
	ReminderDays    *int
}

// UpdateSubscription shallow-merges the patch into the matching record; a
// missing id is a no-op.
func (s *Service) UpdateSubscription(ctx context.Context, id string, patch SubscriptionPatch) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	for _, sub := range s.subs {
		if sub.ID != id {
			continue
		}
		if patch.Name != nil {
			sub.Name = *patch.Name
		}
		if patch.Amount != nil {
			sub.Amount = *patch.Amount
		}
		if patch.Currency != nil {
			sub.Currency = *patch.Currency
		}
		if patch.BillingCycle != nil {
			sub.BillingCycle = *patch.BillingCycle
		}
		if patch.NextBillingDate != nil {
			sub.NextBillingDate = *patch.NextBillingDate
		}
		if patch.Category != nil {
			sub.Category = category.Normalize(*patch.Category)
		}
		if patch.ReminderDays != nil {
			sub.ReminderDays = *patch.ReminderDays
		}
		if err := sub.Validate(); err != nil {
			return err
		}
		s.persistSubscription(sub)
		s.pushWidget()
		return nil
	}
	return nil
}

// MarkSubscriptionPaid toggles the paid flag, stamping the paid date on the
// transition to paid and clearing it on the way back.
func (s *Service) MarkSubscriptionPaid(ctx context.Context, id string) (*subscription.Subscription, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	for _, sub := range s.subs {
		if sub.ID != id {
			continue
		}
		sub.IsPaid = !sub.IsPaid
		if sub.IsPaid {
			sub.PaidDate = &timeutil.Timestamp{Time: s.now()}
		} else {
			sub.PaidDate = nil
		}
		s.persistSubscription(sub)
		s.pushWidget()
		return sub, nil
	}
	return nil, nil
}

// AddTask validates and appends a task.
func (s *Service) AddTask(ctx context.Context, t *task.Task) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	if t == nil {
		return errors.New("app: task required")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = store.NewID()
	}
	s.tasks = append(s.tasks, t)
	s.persistTask(t)
	return nil
}

// ToggleTask flips the completed flag; a missing id is a no-op.
func (s *Service) ToggleTask(ctx context.Context, id string) (*task.Task, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		t.IsCompleted = !t.IsCompleted
		s.persistTask(t)
		return t, nil
	}
	return nil, nil
}

// DeleteTask removes by id; absent ids are a no-op.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	kept := s.tasks[:0]
	removed := false
	for _, t := range s.tasks {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed {
		s.deleteTask(id)
	}
	return nil
}

// Remove deletes whichever record carries the id, subscription or task.
// It reports whether anything matched.
func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	if err := s.load(ctx); err != nil {
		return false, err
	}
	for _, sub := range s.subs {
		if sub.ID == id {
			return true, s.RemoveSubscription(ctx, id)
		}
	}
	for _, t := range s.tasks {
		if t.ID == id {
			return true, s.DeleteTask(ctx, id)
		}
	}
	return false, nil
}

// Persistence failures are deliberately not surfaced: the in-memory state
// stays authoritative for the session and the next successful write catches
// the snapshot up.

func (s *Service) persistSubscription(sub *subscription.Subscription) {
	if err := s.Persistence.StoreSubscription(sub); err != nil {
		fmt.Fprintf(os.Stderr, "app: persist subscription %s: %v\n", sub.ID, err)
	}
}

func (s *Service) deleteSubscription(id string) {
	if err := s.Persistence.DeleteSubscription(id); err != nil {
		fmt.Fprintf(os.Stderr, "app: delete subscription %s: %v\n", id, err)
	}
}

func (s *Service) persistTask(t *task.Task) {
	if err := s.Persistence.StoreTask(t); err != nil {
		fmt.Fprintf(os.Stderr, "app: persist task %s: %v\n", t.ID, err)
	}
}

func (s *Service) deleteTask(id string) {
	if err := s.Persistence.DeleteTask(id); err != nil {
		fmt.Fprintf(os.Stderr, "app: delete task %s: %v\n", id, err)
	}
}

func (s *Service) persistSettings() {
	if err := s.Persistence.StoreSettings(s.settings); err != nil {
		fmt.Fprintf(os.Stderr, "app: persist settings: %v\n", err)
	}
}

// pushWidget mirrors the recomputed totals to the widget surface after
// subscription mutations. Best effort.
func (s *Service) pushWidget() {
	if s.Widget == nil {
		return
	}
	now := s.now()
	snap := widget.Snapshot{
		MonthlyTotal:  view.MonthlyTotal(s.subs),
		Currency:      s.settings.Currency,
		UpcomingCount: len(view.Upcoming(s.subs, s.tasks, now)),
		GeneratedAt:   now,
	}
	if err := s.Widget.Push(snap); err != nil {
		fmt.Fprintf(os.Stderr, "app: widget push: %v\n", err)
	}
}
