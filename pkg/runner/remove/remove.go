// Package remove provides the runner logic for deleting records.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/luxtra-app/luxtra/pkg/app"
)

// Remove deletes whichever record carries the id.
type Remove struct {
	ID      string
	Service *app.Service
}

// Do executes the removal. An unknown id is reported, not an error.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	matched, err := n.Service.Remove(ctx, n.ID)
	if err != nil {
		return err
	}
	if !matched {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("nothing matched %s\n", n.ID)
		return nil
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
