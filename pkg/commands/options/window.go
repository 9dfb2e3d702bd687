package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions
type WindowOptions struct {
	Window string
	Next   bool
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Limit the horizon, example: --window=2w.`)
	cmd.Flags().BoolVarP(&o.Next, "next", "n", false,
		"Show only the next few items.")
}
