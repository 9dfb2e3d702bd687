package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/commands/options"
	"github.com/luxtra-app/luxtra/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	no := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with due dates highlighted",
		Example: `
luxtra calendar
luxtra calendar --on="2026-10-1"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			on, err := no.GetOn()
			if err != nil {
				return err
			}
			if on == nil {
				now := time.Now()
				on = &now
			}

			s := calendar.Calendar{
				ShowID:  io.ShowID,
				On:      *on,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
