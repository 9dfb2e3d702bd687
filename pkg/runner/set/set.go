// Package set provides the runner logic for editing a subscription in place.
package set

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/printers"
)

// Set shallow-merges the patch into the matching subscription.
type Set struct {
	ID      string
	Patch   app.SubscriptionPatch
	Service *app.Service
}

// Do applies the patch and prints the subscription list.
func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set, no service")
	}

	if err := n.Service.UpdateSubscription(ctx, n.ID, n.Patch); err != nil {
		return err
	}

	all, err := n.Service.Subscriptions(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Subscriptions")
	pp.Subscriptions(all...)
	return nil
}
