package commands

import (
	"context"
	"fmt"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"github.com/luxtra-app/luxtra/pkg/commands/options"
	"github.com/luxtra-app/luxtra/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	kind := ""

	cmd := &cobra.Command{
		Use:       "get [kind]",
		Short:     "List subscriptions, tasks, or categories",
		ValidArgs: []string{get.KindSubscriptions, get.KindTasks, get.KindCategories},
		Example: `
luxtra get
luxtra get subscriptions
luxtra get tasks --show-id
luxtra get categories
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return nil
			}
			switch strings.ToLower(args[0]) {
			case get.KindSubscriptions, "subscription", "subs", "sub", "payments":
				kind = get.KindSubscriptions
			case get.KindTasks, "task", "responsibilities", "todos":
				kind = get.KindTasks
			case get.KindCategories, "category", "cats":
				kind = get.KindCategories
			default:
				return fmt.Errorf("unknown kind %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Kind:    kind,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
