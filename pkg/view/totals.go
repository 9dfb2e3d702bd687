package view

import (
	"sort"

	"github.com/luxtra-app/luxtra/pkg/category"
	"github.com/luxtra-app/luxtra/pkg/subscription"
)

// MonthlyTotal sums subscription charges normalized to one month; yearly
// plans contribute a twelfth of their amount.
func MonthlyTotal(subs []*subscription.Subscription) float64 {
	total := 0.0
	for _, s := range subs {
		total += s.MonthlyAmount()
	}
	return total
}

// AnnualTotal sums subscription charges normalized to one year; monthly plans
// contribute twelve times their amount.
func AnnualTotal(subs []*subscription.Subscription) float64 {
	total := 0.0
	for _, s := range subs {
		total += s.AnnualAmount()
	}
	return total
}

// CategoryGroup aggregates the normalized monthly spend for one category key.
type CategoryGroup struct {
	Key    string
	Config category.Config
	Total  float64
	Count  int
}

// Categories groups subscriptions by category key, summing normalized monthly
// amounts, ordered by descending total. Unknown keys keep their own group but
// render with the General config.
func Categories(subs []*subscription.Subscription) []CategoryGroup {
	groups := make(map[string]*CategoryGroup)
	for _, s := range subs {
		key := category.Normalize(s.Category)
		g, ok := groups[key]
		if !ok {
			g = &CategoryGroup{Key: key, Config: category.Lookup(s.Category)}
			groups[key] = g
		}
		g.Total += s.MonthlyAmount()
		g.Count++
	}

	list := make([]CategoryGroup, 0, len(groups))
	for _, g := range groups {
		list = append(list, *g)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Total == list[j].Total {
			return list[i].Key < list[j].Key
		}
		return list[i].Total > list[j].Total
	})
	return list
}
