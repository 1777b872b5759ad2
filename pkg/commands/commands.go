package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mindnote",
		Short: base.Wrap80("Personal journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addUI(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// service loads the configured store and wraps it for the runners.
func service() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &app.Service{Store: p}, nil
}
