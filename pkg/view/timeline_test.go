package view

import (
	"testing"
	"time"

	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

func dueTask(title string, due time.Time) *task.Task {
	tk := task.New(title, timeutil.Timestamp{Time: due}, task.Medium)
	tk.ID = title
	return tk
}

func dueSub(name string, next time.Time) *subscription.Subscription {
	s := subscription.New(name, 10, subscription.USD, subscription.Monthly, timeutil.Timestamp{Time: next})
	s.ID = name
	return s
}

func TestTimelineIsAPartition(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)
	subs := []*subscription.Subscription{
		dueSub("overdue", now.AddDate(0, 0, -3)),
		dueSub("today", now.Add(2*time.Hour)),
		dueSub("later", now.AddDate(0, 2, 0)),
	}
	tasks := []*task.Task{
		dueTask("tomorrow", now.AddDate(0, 0, 1)),
		dueTask("week", now.AddDate(0, 0, 5)),
		dueTask("month", now.AddDate(0, 0, 20)),
		dueTask("done", now), // completed, excluded
	}
	tasks[3].IsCompleted = true

	b := Timeline(subs, tasks, now)
	if b.Len() != 6 {
		t.Fatalf("expected 6 items across buckets, got %d", b.Len())
	}
	for _, c := range []struct {
		bucket Bucket
		want   string
	}{
		{BucketOverdue, "overdue"},
		{BucketToday, "today"},
		{BucketTomorrow, "tomorrow"},
		{BucketThisWeek, "week"},
		{BucketThisMonth, "month"},
		{BucketLater, "later"},
	} {
		items := b.Get(c.bucket)
		if len(items) != 1 {
			t.Fatalf("bucket %s: expected 1 item, got %d", c.bucket, len(items))
		}
		if items[0].Title != c.want {
			t.Fatalf("bucket %s: expected %q, got %q", c.bucket, c.want, items[0].Title)
		}
	}
}

func TestTimelineExactNowIsToday(t *testing.T) {
	now := time.Date(2026, time.August, 28, 9, 30, 0, 0, time.Local)
	b := Timeline(nil, []*task.Task{dueTask("due now", now)}, now)
	if len(b.Today) != 1 {
		t.Fatalf("item dated exactly now must be today, got %+v", b)
	}
	if len(b.Overdue) != 0 {
		t.Fatalf("item dated exactly now must never be overdue")
	}
}

func TestTimelineEarlierTodayIsNotOverdue(t *testing.T) {
	now := time.Date(2026, time.August, 28, 22, 0, 0, 0, time.Local)
	earlier := time.Date(2026, time.August, 28, 6, 0, 0, 0, time.Local)
	b := Timeline(nil, []*task.Task{dueTask("this morning", earlier)}, now)
	if len(b.Today) != 1 || len(b.Overdue) != 0 {
		t.Fatalf("same calendar day must be today regardless of time-of-day: %+v", b)
	}
}

func TestTimelineWeekBoundary(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)

	b := Timeline(nil, []*task.Task{dueTask("seven days", now.Add(7*24*time.Hour))}, now)
	if len(b.ThisWeek) != 1 {
		t.Fatalf("exactly seven days out must be thisWeek, got %+v", b)
	}

	b = Timeline(nil, []*task.Task{dueTask("eight days", now.Add(8*24*time.Hour))}, now)
	if len(b.ThisMonth) != 1 {
		t.Fatalf("eight days out must be thisMonth, got %+v", b)
	}
}

func TestTimelineSortsAscendingWithinBuckets(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)
	tasks := []*task.Task{
		dueTask("third", now.AddDate(0, 0, 6)),
		dueTask("first", now.AddDate(0, 0, 2)),
		dueTask("second", now.AddDate(0, 0, 4)),
	}
	b := Timeline(nil, tasks, now)
	if len(b.ThisWeek) != 3 {
		t.Fatalf("expected 3 thisWeek items, got %d", len(b.ThisWeek))
	}
	for i, want := range []string{"first", "second", "third"} {
		if b.ThisWeek[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, b.ThisWeek[i].Title)
		}
	}
}

func TestTimelineZeroDateDoesNotPanic(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)
	b := Timeline(nil, []*task.Task{dueTask("undated", time.Time{})}, now)
	if b.Len() != 1 {
		t.Fatalf("undated item must still be bucketed, got %d", b.Len())
	}
	if len(b.Overdue) != 1 {
		t.Fatalf("zero date sorts into overdue, got %+v", b)
	}
}

func TestUpcomingWindowAndCap(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.Local)
	tasks := []*task.Task{
		dueTask("too old", now.AddDate(0, 0, -3)),
		dueTask("too far", now.AddDate(0, 0, 45)),
		dueTask("d", now.AddDate(0, 0, 9)),
		dueTask("b", now.AddDate(0, 0, 3)),
		dueTask("a", now.AddDate(0, 0, 1)),
		dueTask("c", now.AddDate(0, 0, 6)),
		dueTask("e", now.AddDate(0, 0, 12)),
		dueTask("f", now.AddDate(0, 0, 15)),
	}
	items := Upcoming(nil, tasks, now)
	if len(items) != 5 {
		t.Fatalf("expected cap of 5, got %d", len(items))
	}
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if items[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, items[i].Title)
		}
	}
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		date time.Time
		want string
	}{
		{now, "today"},
		{now.Add(-2 * time.Hour), "today"},
		{now.Add(time.Duration(0.1 * 24 * float64(time.Hour))), "tomorrow"},
		{now.Add(24 * time.Hour), "tomorrow"},
		{now.Add(time.Duration(1.9 * 24 * float64(time.Hour))), "in 2 days"},
		{now.AddDate(0, 0, -2), "overdue"},
		{now.AddDate(0, 0, 10), "in 10 days"},
	}
	for _, c := range cases {
		if got := DueLabel(c.date, now); got != c.want {
			t.Fatalf("date %v: expected %q, got %q", c.date, c.want, got)
		}
	}
}
