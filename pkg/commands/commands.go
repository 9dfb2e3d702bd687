package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/luxtra-app/luxtra/pkg/app"
	"github.com/luxtra-app/luxtra/pkg/store"
	"github.com/luxtra-app/luxtra/pkg/widget"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "luxtra",
		Short: base.Wrap80("Track subscriptions and recurring responsibilities on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addSet(topLevel)
	addRemove(topLevel)
	addPaid(topLevel)
	addDone(topLevel)
	addUpcoming(topLevel)
	addSummary(topLevel)
	addInsight(topLevel)
	addCalendar(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &app.Service{
		Persistence: p,
		Widget:      &widget.Writer{Path: cfg.WidgetPath()},
	}, nil
}
