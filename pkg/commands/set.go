package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/commands/options"
	"github.com/luxtra-app/luxtra/pkg/runner/set"
	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

func addSet(topLevel *cobra.Command) {
	so := &options.SubscriptionOptions{}
	io := &options.IDOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:     "set",
		Aliases: []string{"edit", "update"},
		Short:   "Update fields on a subscription",
		Example: `
luxtra set <subscription id> --amount 17.99
luxtra set <subscription id> --category entertainment --next="10/12"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a subscription id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			patch := app.SubscriptionPatch{}
			fl := cmd.Flags()
			if fl.Changed("name") {
				patch.Name = &name
			}
			if fl.Changed("amount") {
				patch.Amount = &so.Amount
			}
			if fl.Changed("cycle") {
				cycle, err := subscription.ParseCycle(so.Cycle)
				if err != nil {
					return err
				}
				patch.BillingCycle = &cycle
			}
			if fl.Changed("currency") {
				cur, err := subscription.ParseCurrency(so.Currency)
				if err != nil {
					return err
				}
				patch.Currency = &cur
			}
			if fl.Changed("category") {
				patch.Category = &so.Category
			}
			if fl.Changed("next") {
				next, err := so.GetNext()
				if err != nil {
					return err
				}
				if next != nil {
					patch.NextBillingDate = &timeutil.Timestamp{Time: *next}
				}
			}
			if fl.Changed("remind") {
				patch.ReminderDays = &so.RemindDays
			}

			s := set.Set{
				ID:      io.ID,
				Patch:   patch,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Rename the subscription.")
	options.AddSubscriptionArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
