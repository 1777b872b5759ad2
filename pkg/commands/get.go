package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/commands/options"
	"github.com/Naheeria/mindcontrol/pkg/query"
	"github.com/Naheeria/mindcontrol/pkg/record"
	"github.com/Naheeria/mindcontrol/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	long := strings.Builder{}
	long.WriteString("Get all or a filtered set of entries, grouped by day.\n\n")
	long.WriteString("Kinds and aliases:\n")

	validArgs := make([]string, 0, len(record.Kinds()))

	for _, info := range record.DefaultKinds() {
		long.WriteString(fmt.Sprintf("%s: %s\n", info.Symbol, strings.Join(info.Aliases, ", ")))
		validArgs = append(validArgs, info.Noun)
	}

	cmd := &cobra.Command{
		Use:   "get [kind]",
		Short: "get entries",
		Long:  long.String(),
		Example: `
mindnote get
mindnote get emotion
mindnote get --search coffee
mindnote get morning --date 2024-02-28
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				fo.Kind = record.Any
				return nil
			}
			var err error
			fo.Kind, err = record.KindForAlias(args[0])
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID: io.ShowID,
				JSON:   oo.JSON,
				Filter: query.Filter{
					Search: fo.Search,
					Kind:   fo.Kind,
					Date:   fo.Date,
				},
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
