// Package insight produces short financial/productivity observations from the
// current aggregates, with no network dependency. It is total: for every
// possible input it returns a non-empty string.
package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/luxtra-app/luxtra/pkg/category"
	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
	"github.com/luxtra-app/luxtra/pkg/view"
)

// Language selects the template pool.
type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
	Spanish Language = "es"
)

// ParseLanguage converts a string to a Language, defaulting empty to English.
func ParseLanguage(raw string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case English, "":
		return English, nil
	case Turkish:
		return Turkish, nil
	case Spanish:
		return Spanish, nil
	}
	return English, fmt.Errorf("insight: unsupported language %q", raw)
}

// Stats are the aggregates the templates gate on.
type Stats struct {
	SubscriptionCount int
	MonthlyTotal      float64
	AnnualTotal       float64
	Currency          subscription.Currency

	TopName   string
	TopAmount float64 // normalized to monthly

	TopCategoryLabel string
	TopCategoryTotal float64
	TopCategoryCount int

	MonthlyCount int
	YearlyCount  int
	DueSoonCount int // subscriptions charging within the next 7 days

	OpenTaskCount      int
	OverdueTaskCount   int
	RecurringTaskCount int
	NextTaskTitle      string
	NextTaskDays       int

	MonthlyBudget float64
}

// Collect derives Stats from the entity collections against an explicit now.
func Collect(subs []*subscription.Subscription, tasks []*task.Task, budget float64, cur subscription.Currency, now time.Time) Stats {
	stats := Stats{
		SubscriptionCount: len(subs),
		MonthlyTotal:      view.MonthlyTotal(subs),
		AnnualTotal:       view.AnnualTotal(subs),
		Currency:          cur,
		MonthlyBudget:     budget,
		NextTaskDays:      math.MaxInt,
	}

	for _, s := range subs {
		if m := s.MonthlyAmount(); m > stats.TopAmount {
			stats.TopAmount = m
			stats.TopName = s.Name
		}
		if s.BillingCycle == subscription.Yearly {
			stats.YearlyCount++
		} else {
			stats.MonthlyCount++
		}
		if d := timeutil.DaysUntil(s.NextBillingDate.Time, now); d >= 0 && d <= 7 {
			stats.DueSoonCount++
		}
	}

	if groups := view.Categories(subs); len(groups) > 0 {
		stats.TopCategoryLabel = category.Lookup(groups[0].Key).Label
		stats.TopCategoryTotal = groups[0].Total
		stats.TopCategoryCount = groups[0].Count
	}

	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}
		stats.OpenTaskCount++
		if t.IsRecurring {
			stats.RecurringTaskCount++
		}
		days := timeutil.DaysUntil(t.DueDate.Time, now)
		if days < 0 {
			stats.OverdueTaskCount++
			continue
		}
		if days < stats.NextTaskDays {
			stats.NextTaskDays = days
			stats.NextTaskTitle = t.Title
		}
	}
	if stats.NextTaskTitle == "" {
		stats.NextTaskDays = 0
	}
	return stats
}

// Seed is the production default: templates reshuffle as the clock ticks.
func Seed(now time.Time) float64 {
	return float64(now.Unix())
}

// Generate picks one or two eligible templates for the language, reordered by
// a sinusoidal weight over each candidate's pool index plus the seed, and
// joins them with a blank line. With nothing tracked at all it returns the
// fixed all-clear string. It never fails and never returns an empty string.
func Generate(stats Stats, lang Language, seed float64) string {
	type candidate struct {
		pos  int
		text string
	}

	pool := make([]candidate, 0, len(templates))
	for _, t := range templates {
		if !t.when(stats) {
			continue
		}
		pool = append(pool, candidate{pos: len(pool), text: t.render(stats, lang)})
	}
	if len(pool) == 0 {
		return allClear(lang)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return math.Sin(float64(pool[i].pos)+seed) < math.Sin(float64(pool[j].pos)+seed)
	})

	n := 2
	if len(pool) < n {
		n = len(pool)
	}
	parts := make([]string, 0, n)
	for _, c := range pool[:n] {
		parts = append(parts, c.text)
	}
	return strings.Join(parts, "\n\n")
}
