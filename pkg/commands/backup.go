package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/runner/export"
	"github.com/Naheeria/mindcontrol/pkg/runner/restore"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Back up all entries as CSV",
		Example: `
mindnote export
mindnote export mind_notes_2024-02-28.csv
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			s := export.Export{Service: svc}
			if len(args) == 1 {
				s.Path = args[0]
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore entries from a CSV backup",
		Long: "Restore entries from a CSV backup. Every valid row becomes a new entry\n" +
			"with a fresh id; rows that cannot be parsed are skipped.",
		Example: `
mindnote import mind_notes_2024-02-28.csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			s := restore.Restore{
				Path:    args[0],
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
