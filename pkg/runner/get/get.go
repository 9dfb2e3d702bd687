// Package get provides the runner logic for listing records.
package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/category"
	"github.com/luxtra-app/luxtra/pkg/printers"
)

// Get lists subscriptions, tasks, or the category table.
type Get struct {
	ShowID  bool
	Kind    string
	Service *app.Service
}

const (
	KindSubscriptions = "subscriptions"
	KindTasks         = "tasks"
	KindCategories    = "categories"
)

// Do executes the listing.
func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.Kind {
	case KindTasks:
		all, err := n.Service.Tasks(ctx)
		if err != nil {
			return err
		}
		pp.TitleWithCount("Responsibilities", len(all))
		pp.Tasks(all...)
	case KindCategories:
		pp.Title("Categories")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, c := range category.All() {
			tbl.AddRow(c.Key, color.New(c.Color).Sprint(c.Label))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		fmt.Println("")
	case KindSubscriptions, "":
		all, err := n.Service.Subscriptions(ctx)
		if err != nil {
			return err
		}
		pp.TitleWithCount("Subscriptions", len(all))
		pp.Subscriptions(all...)
	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}

	return nil
}
