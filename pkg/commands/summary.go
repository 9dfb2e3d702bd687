package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spend totals and the category breakdown",
		Example: `
luxtra summary
luxtra summary --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := summary.Summary{
				JSON:    oo.JSON,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
