// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// RecordOptions captures the editable fields of a journal entry.
type RecordOptions struct {
	Date    string
	Title   string
	Content string
	Mood    int
	Tags    []string
	Keep    string
	Problem string
	Try     string
}

func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Specify the entry date, example: --date="2024-02-28". Defaults to today.`)
	cmd.Flags().StringVar(&o.Content, "content", "",
		"Specify the entry content.")
	cmd.Flags().StringSliceVar(&o.Tags, "tag", nil,
		"Tag the entry. May be given more than once.")
}

func AddMoodArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().IntVar(&o.Mood, "mood", 3,
		"Rate the mood from 1 (worst) to 5 (best).")
}

func AddRetroArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVar(&o.Keep, "keep", "",
		"What went well and should continue.")
	cmd.Flags().StringVar(&o.Problem, "problem", "",
		"What went wrong.")
	cmd.Flags().StringVar(&o.Try, "try", "",
		"What to try next.")
}
