package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/commands/options"
	"github.com/Naheeria/mindcontrol/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month grid with journaled days highlighted",
		Example: `
mindnote calendar
mindnote cal --month 2024-02
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
			s := calendar.Calendar{
				On:      time.Date(year, month, 1, 0, 0, 0, 0, time.Local),
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddMonthArg(cmd, mo)

	topLevel.AddCommand(cmd)
}
