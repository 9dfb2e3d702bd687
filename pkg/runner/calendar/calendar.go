// Package calendar provides the runner logic for the month view.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/printers"
	"github.com/luxtra-app/luxtra/pkg/view"
)

// Calendar prints the month grid with due days highlighted.
type Calendar struct {
	ShowID  bool
	On      time.Time // zero means the current month
	Service *app.Service
}

// Do executes the calendar rendering.
func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	on := n.On
	if on.IsZero() {
		on = time.Now()
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
	pp.Calendar(on, view.Items(subs, tasks)...)
	return nil
}
