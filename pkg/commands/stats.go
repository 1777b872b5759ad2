package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/commands/options"
	"github.com/Naheeria/mindcontrol/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a month's mood histogram and entry habits",
		Example: `
mindnote stats
mindnote stats --month 2024-02
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := mo.GetMonth()
			if err != nil {
				return err
			}
			svc, err := service()
			if err != nil {
				return err
			}
			s := stats.Stats{
				Year:    year,
				Month:   month,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArg(cmd, mo)

	topLevel.AddCommand(cmd)
}
