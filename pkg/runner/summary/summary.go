// Package summary provides the runner logic for spend totals.
package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/category"
	"github.com/luxtra-app/luxtra/pkg/printers"
	"github.com/luxtra-app/luxtra/pkg/view"
)

// Summary prints monthly/annual totals and the category breakdown.
type Summary struct {
	JSON    bool
	Service *app.Service
}

type categoryOut struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type summaryOut struct {
	MonthlyTotal float64       `json:"monthlyTotal"`
	AnnualTotal  float64       `json:"annualTotal"`
	Currency     string        `json:"currency"`
	Categories   []categoryOut `json:"categories"`
}

// Do executes the summary rendering.
func (n *Summary) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not summarize, no service")
	}

	subs, err := n.Service.Subscriptions(ctx)
	if err != nil {
		return err
	}
	settings, err := n.Service.Settings(ctx)
	if err != nil {
		return err
	}

	monthly := view.MonthlyTotal(subs)
	annual := view.AnnualTotal(subs)
	groups := view.Categories(subs)

	if n.JSON {
		out := summaryOut{
			MonthlyTotal: monthly,
			AnnualTotal:  annual,
			Currency:     string(settings.Currency),
			Categories:   make([]categoryOut, 0, len(groups)),
		}
		for _, g := range groups {
			out.Categories = append(out.Categories, categoryOut{
				Key:   g.Key,
				Label: category.Lookup(g.Key).Label,
				Total: g.Total,
				Count: g.Count,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Summary(settings.Currency, monthly, annual, groups)
	return nil
}
