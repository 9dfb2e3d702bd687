package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
luxtra ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			i := ui.UI{Service: svc}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
