// Package done provides the runner logic for toggling task completion.
package done

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/printers"
)

// Done toggles the completed state of a task.
type Done struct {
	ID      string
	Service *app.Service
}

// Do executes the toggle and prints the task list.
func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	t, err := n.Service.ToggleTask(ctx, n.ID)
	if err != nil {
		return err
	}
	if t == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("nothing matched %s\n", n.ID)
		return nil
	}

	all, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Responsibilities")
	pp.Tasks(all...)
	return nil
}
