package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

const layoutMonth = "2006-01"

// FilterOptions captures list filtering flags.
type FilterOptions struct {
	Kind   record.Kind
	Search string
	Date   string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Match entries whose title or content contains the text.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Only entries on the given day, example: --date="2024-02-28".`)
}

// MonthOptions selects a calendar month for stats and calendar views.
type MonthOptions struct {
	Month string
}

func AddMonthArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Specify the month, example: --month="2024-02". Defaults to the current month.`)
}

// GetMonth parses the selected month, defaulting to the current one.
func (o *MonthOptions) GetMonth() (int, time.Month, error) {
	if o.Month == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse(layoutMonth, o.Month)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}
