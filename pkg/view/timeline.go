package view

import (
	"sort"
	"time"

	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

// Bucket names the six timeline partitions in display order.
type Bucket string

const (
	BucketOverdue   Bucket = "overdue"
	BucketToday     Bucket = "today"
	BucketTomorrow  Bucket = "tomorrow"
	BucketThisWeek  Bucket = "thisWeek"
	BucketThisMonth Bucket = "thisMonth"
	BucketLater     Bucket = "later"
)

// BucketOrder is the display order of the timeline partitions.
func BucketOrder() []Bucket {
	return []Bucket{
		BucketOverdue,
		BucketToday,
		BucketTomorrow,
		BucketThisWeek,
		BucketThisMonth,
		BucketLater,
	}
}

// Buckets partitions timeline items. Every input item lands in exactly one
// bucket.
type Buckets struct {
	Overdue   []Item
	Today     []Item
	Tomorrow  []Item
	ThisWeek  []Item
	ThisMonth []Item
	Later     []Item
}

// Get returns the items for a named bucket.
func (b Buckets) Get(name Bucket) []Item {
	switch name {
	case BucketOverdue:
		return b.Overdue
	case BucketToday:
		return b.Today
	case BucketTomorrow:
		return b.Tomorrow
	case BucketThisWeek:
		return b.ThisWeek
	case BucketThisMonth:
		return b.ThisMonth
	case BucketLater:
		return b.Later
	}
	return nil
}

// Len is the total item count across all buckets.
func (b Buckets) Len() int {
	return len(b.Overdue) + len(b.Today) + len(b.Tomorrow) +
		len(b.ThisWeek) + len(b.ThisMonth) + len(b.Later)
}

// Timeline merges subscriptions and open tasks into items, sorts them by date
// ascending, and partitions them against now.
//
// An item dated today always lands in today, never overdue, regardless of
// time-of-day: the overdue check requires both date < now and a different
// calendar day.
func Timeline(subs []*subscription.Subscription, tasks []*task.Task, now time.Time) Buckets {
	items := Items(subs, tasks)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	tomorrow := now.AddDate(0, 0, 1)
	weekEnd := now.Add(7 * 24 * time.Hour)
	monthEnd := now.AddDate(0, 1, 0)

	var b Buckets
	for _, item := range items {
		switch {
		case item.Date.Before(now) && !timeutil.SameDay(item.Date, now):
			b.Overdue = append(b.Overdue, item)
		case timeutil.SameDay(item.Date, now):
			b.Today = append(b.Today, item)
		case timeutil.SameDay(item.Date, tomorrow):
			b.Tomorrow = append(b.Tomorrow, item)
		case !item.Date.After(weekEnd):
			b.ThisWeek = append(b.ThisWeek, item)
		case !item.Date.After(monthEnd):
			b.ThisMonth = append(b.ThisMonth, item)
		default:
			b.Later = append(b.Later, item)
		}
	}
	return b
}

const upcomingLimit = 5

// Upcoming is the condensed home view: items due within the last day through
// the next thirty, ascending by date, capped at five.
func Upcoming(subs []*subscription.Subscription, tasks []*task.Task, now time.Time) []Item {
	lower := now.AddDate(0, 0, -1)
	upper := now.AddDate(0, 0, 30)

	items := Items(subs, tasks)
	kept := items[:0]
	for _, item := range items {
		if item.Date.After(lower) && !item.Date.After(upper) {
			kept = append(kept, item)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})
	if len(kept) > upcomingLimit {
		kept = kept[:upcomingLimit]
	}
	return kept
}
