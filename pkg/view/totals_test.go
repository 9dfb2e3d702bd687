package view

import (
	"math"
	"testing"

	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

func sub(name string, amount float64, cycle subscription.BillingCycle, cat string) *subscription.Subscription {
	s := subscription.New(name, amount, subscription.USD, cycle, timeutil.Timestamp{})
	s.ID = name
	s.Category = cat
	return s
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalsMixedCycles(t *testing.T) {
	subs := []*subscription.Subscription{
		sub("monthly", 100, subscription.Monthly, "software"),
		sub("yearly", 1200, subscription.Yearly, "software"),
	}

	if got := MonthlyTotal(subs); !approx(got, 200) {
		t.Fatalf("expected monthly total 200, got %v", got)
	}
	if got := AnnualTotal(subs); !approx(got, 2400) {
		t.Fatalf("expected annual total 2400, got %v", got)
	}
}

func TestTotalsNormalizePerCycle(t *testing.T) {
	yearly := []*subscription.Subscription{sub("yearly", 120, subscription.Yearly, "")}
	if got := MonthlyTotal(yearly); !approx(got, 10) {
		t.Fatalf("yearly plan must contribute amount/12 monthly, got %v", got)
	}
	if got := AnnualTotal(yearly); !approx(got, 120) {
		t.Fatalf("yearly plan must contribute its amount annually, got %v", got)
	}

	monthly := []*subscription.Subscription{sub("monthly", 10, subscription.Monthly, "")}
	if got := MonthlyTotal(monthly); !approx(got, 10) {
		t.Fatalf("monthly plan must contribute its amount monthly, got %v", got)
	}
	if got := AnnualTotal(monthly); !approx(got, 120) {
		t.Fatalf("monthly plan must contribute amount*12 annually, got %v", got)
	}
}

func TestCategoriesOrderedByTotal(t *testing.T) {
	subs := []*subscription.Subscription{
		sub("a", 5, subscription.Monthly, "music"),
		sub("b", 20, subscription.Monthly, "streaming"),
		sub("c", 10, subscription.Monthly, "streaming"),
	}
	groups := Categories(subs)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "streaming" || groups[0].Count != 2 || !approx(groups[0].Total, 30) {
		t.Fatalf("unexpected top group: %+v", groups[0])
	}
	if groups[1].Key != "music" {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
}

func TestCategoryTotalsSumToMonthlyTotal(t *testing.T) {
	subs := []*subscription.Subscription{
		sub("a", 9.99, subscription.Monthly, "streaming"),
		sub("b", 120, subscription.Yearly, "Dog Walking"),
		sub("c", 4.5, subscription.Monthly, ""),
		sub("d", 30, subscription.Monthly, "unknown-key"),
	}
	groups := Categories(subs)
	sum := 0.0
	for _, g := range groups {
		sum += g.Total
	}
	if !approx(sum, MonthlyTotal(subs)) {
		t.Fatalf("category totals %v must sum to monthly total %v", sum, MonthlyTotal(subs))
	}
}

func TestCategoriesUnknownKeyKeepsGrouping(t *testing.T) {
	subs := []*subscription.Subscription{
		sub("a", 10, subscription.Monthly, "Vet Bills"),
		sub("b", 5, subscription.Monthly, "Vet Bills"),
	}
	groups := Categories(subs)
	if len(groups) != 1 {
		t.Fatalf("expected one group for repeated unknown key, got %d", len(groups))
	}
	if groups[0].Key != "vet bills" {
		t.Fatalf("unknown key must be retained for grouping, got %q", groups[0].Key)
	}
}
