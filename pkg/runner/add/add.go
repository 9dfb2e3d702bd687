// Package add provides the runner logic for recording new items.
package add

import (
	"context"
	"errors"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/printers"
	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
)

// Add records a subscription or a task, whichever is set.
type Add struct {
	ShowID       bool
	Subscription *subscription.Subscription
	Task         *task.Task
	Service      *app.Service
}

// Do executes the add operation and prints the resulting list.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch {
	case n.Subscription != nil:
		if err := n.Service.AddSubscription(ctx, n.Subscription); err != nil {
			return err
		}
		all, err := n.Service.Subscriptions(ctx)
		if err != nil {
			return err
		}
		pp.Title("Subscriptions")
		pp.Subscriptions(all...)
	case n.Task != nil:
		if err := n.Service.AddTask(ctx, n.Task); err != nil {
			return err
		}
		all, err := n.Service.Tasks(ctx)
		if err != nil {
			return err
		}
		pp.Title("Responsibilities")
		pp.Tasks(all...)
	default:
		return errors.New("nothing to add")
	}
	return nil
}
