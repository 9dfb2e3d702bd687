package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/commands/options"
	"github.com/luxtra-app/luxtra/pkg/runner/insight"
)

func addInsight(topLevel *cobra.Command) {
	no := &options.InsightOptions{}

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Generate an observation about your spending and tasks",
		Example: `
luxtra insight
luxtra insight --lang=tr
luxtra insight --seed=42
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := insight.Insight{
				Lang:    no.Lang,
				Seed:    no.Seed,
				HasSeed: cmd.Flags().Changed("seed"),
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddInsightArgs(cmd, no)

	topLevel.AddCommand(cmd)
}
