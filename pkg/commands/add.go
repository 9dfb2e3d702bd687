package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/commands/options"
	"github.com/luxtra-app/luxtra/pkg/runner/add"
	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
	"github.com/luxtra-app/luxtra/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
luxtra add subscription Netflix --amount 15.99 --category entertainment
luxtra add task pay rent --due="9/1" --priority high
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSubscription(cmd)
	addTask(cmd)

	topLevel.AddCommand(cmd)
}

func addSubscription(topLevel *cobra.Command) {
	so := &options.SubscriptionOptions{}
	io := &options.IDOptions{}
	name := ""

	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub", "payment"},
		Short:   "Add a subscription",
		Example: `
luxtra add subscription Netflix --amount 15.99 --cycle monthly --next="9/12"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a subscription name")
			}
			name = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			cycle, err := subscription.ParseCycle(so.Cycle)
			if err != nil {
				return err
			}
			cur, err := subscription.ParseCurrency(so.Currency)
			if err != nil {
				return err
			}
			next, err := so.GetNext()
			if err != nil {
				return err
			}

			billing := timeutil.Timestamp{}
			if next != nil {
				billing = timeutil.Timestamp{Time: *next}
			}
			sub := subscription.New(name, so.Amount, cur, cycle, billing)
			if so.Category != "" {
				sub.Category = so.Category
			}
			sub.ReminderDays = so.RemindDays

			s := add.Add{
				ShowID:       io.ShowID,
				Subscription: sub,
				Service:      svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSubscriptionArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"responsibility", "todo"},
		Short:   "Add a responsibility",
		Example: `
luxtra add task renew passport --due="2026-10-1"
luxtra add task water plants --recurring --months 1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}

			priority, err := task.ParsePriority(to.Priority)
			if err != nil {
				return err
			}
			due, err := to.GetDue()
			if err != nil {
				return err
			}

			dueDate := timeutil.Timestamp{}
			if due != nil {
				dueDate = timeutil.Timestamp{Time: *due}
			}
			t := task.New(title, dueDate, priority)
			t.IsRecurring = to.Recurring
			t.RecurringMonths = to.Months

			s := add.Add{
				ShowID:  io.ShowID,
				Task:    t,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
