package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/commands/options"
	"github.com/Naheeria/mindcontrol/pkg/record"
	"github.com/Naheeria/mindcontrol/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a journal entry",
		Example: `
mindnote add morning Slept well, slow start
mindnote add emotion --mood 4 grateful
mindnote add retro --keep "daily walks" --problem "late nights" --try "lights out by 11"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, k := range record.Kinds() {
		addAddKind(cmd, k)
	}

	topLevel.AddCommand(cmd)
}

func addAddKind(topLevel *cobra.Command, kind record.Kind) {
	ro := &options.RecordOptions{}
	info := kind.Info()

	cmd := &cobra.Command{
		Use:     info.Noun + " [title]",
		Short:   fmt.Sprintf("%s  add a %s entry", info.Symbol, info.Noun),
		Aliases: info.Aliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:    kind,
				Date:    ro.Date,
				Title:   strings.Join(args, " "),
				Content: ro.Content,
				Tags:    ro.Tags,
				Service: svc,
			}
			if kind == record.Emotion {
				s.Mood = ro.Mood
			}
			if kind == record.Retrospective {
				s.Retro = record.Retro{Keep: ro.Keep, Problem: ro.Problem, Try: ro.Try}
			}
			return s.Do(context.Background())
		},
	}

	options.AddRecordArgs(cmd, ro)
	switch kind {
	case record.Emotion:
		options.AddMoodArgs(cmd, ro)
	case record.Retrospective:
		options.AddRetroArgs(cmd, ro)
	}

	topLevel.AddCommand(cmd)
}
