package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/commands/options"
	"github.com/luxtra-app/luxtra/pkg/runner/upcoming"
)

func addUpcoming(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show what is due, bucketed by urgency",
		Example: `
luxtra upcoming
luxtra upcoming --window=2w
luxtra upcoming --next
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := upcoming.Upcoming{
				ShowID:  io.ShowID,
				Window:  wo.Window,
				Next:    wo.Next,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
