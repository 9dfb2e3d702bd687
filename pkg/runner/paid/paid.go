// Package paid provides the runner logic for toggling a subscription's paid
// flag.
package paid

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/printers"
)

// Paid toggles the paid state of a subscription.
type Paid struct {
	ID      string
	Service *app.Service
}

// Do executes the toggle and prints the subscription list.
func (n *Paid) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not mark paid, no service")
	}

	sub, err := n.Service.MarkSubscriptionPaid(ctx, n.ID)
	if err != nil {
		return err
	}
	if sub == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("nothing matched %s\n", n.ID)
		return nil
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
