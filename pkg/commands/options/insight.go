package options

import (
	"github.com/spf13/cobra"
)

// InsightOptions
type InsightOptions struct {
	Lang string
	Seed float64
}

func AddInsightArgs(cmd *cobra.Command, o *InsightOptions) {
	cmd.Flags().StringVarP(&o.Lang, "lang", "l", "",
		"Language, one of en, tr, es. Defaults to the stored preference.")
	cmd.Flags().Float64Var(&o.Seed, "seed", 0,
		"Fixed selection seed for reproducible output.")
}
