// Package ui provides the runner logic for the interactive timeline.
package ui

import (
	"context"
	"errors"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/tui/timeline"
)

// UI opens the full-screen timeline.
type UI struct {
	Service *app.Service
}

// Do runs the program until the user quits.
func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open ui, no service")
	}
	return timeline.Run(n.Service)
}
