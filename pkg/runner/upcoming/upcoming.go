// Package upcoming provides the runner logic for the bucketed timeline.
package upcoming

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/printers"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
	"github.com/luxtra-app/luxtra/pkg/view"
)

// Upcoming prints the timeline partitioned into the six buckets.
type Upcoming struct {
	ShowID  bool
	Window  string // optional horizon like "2w"; empty shows everything
	Next    bool   // condensed home view: next five items only
	Service *app.Service

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// Do executes the timeline rendering.
func (n *Upcoming) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list upcoming, no service")
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

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Next {
		pp.Items("Next up", view.Upcoming(subs, tasks, now), now)
		return nil
	}

	b := view.Timeline(subs, tasks, now)

	var cutoff time.Time
	if n.Window != "" {
		window, _, err := timeutil.ParseWindow(n.Window)
		if err != nil {
			return err
		}
		cutoff = now.Add(window)
	}

	for _, name := range view.BucketOrder() {
		items := b.Get(name)
		if !cutoff.IsZero() && name != view.BucketOverdue {
			kept := items[:0]
			for _, item := range items {
				if !item.Date.After(cutoff) {
					kept = append(kept, item)
				}
			}
			items = kept
		}
		pp.Bucket(name, items, now)
	}
	return nil
}
