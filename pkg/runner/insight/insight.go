// Package insight provides the runner logic for generated observations.
package insight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/insight"
	"github.com/luxtra-app/luxtra/pkg/printers"
)

// Insight prints one or two observations about the tracked records.
type Insight struct {
	Lang    string
	Seed    float64 // zero means derive from the clock
	HasSeed bool
	Service *app.Service

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// Do executes the insight generation.
func (n *Insight) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not generate insight, no service")
	}

	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	subs, err := n.Service.Subscriptions(ctx)
	if err != nil {
		return err
	}
	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	settings, err := n.Service.Settings(ctx)
	if err != nil {
		return err
	}

	raw := n.Lang
	if raw == "" {
		raw = settings.Language
	}
	lang, err := insight.ParseLanguage(raw)
	if err != nil {
		return err
	}

	seed := n.Seed
	if !n.HasSeed {
		seed = insight.Seed(now)
	}

	stats := insight.Collect(subs, tasks, settings.MonthlyBudget, settings.Currency, now)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Insight(insight.Generate(stats, lang, seed))
	return nil
}
