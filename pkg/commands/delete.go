package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/commands/options"
	"github.com/Naheeria/mindcontrol/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete an entry permanently",
		Example: `
mindnote delete --id 171dff69f8b99dca
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:      io.ID,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
