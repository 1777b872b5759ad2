package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Naheeria/mindcontrol/pkg/commands/options"
	"github.com/Naheeria/mindcontrol/pkg/record"
	"github.com/Naheeria/mindcontrol/pkg/runner/edit"
	"github.com/Naheeria/mindcontrol/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ro := &options.RecordOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update fields of an entry; unset flags keep their value",
		Example: `
mindnote edit --id 171dff69f8b99dca --title "Better title"
mindnote edit --id 171dff69f8b99dca --mood 5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("edit requires --id")
			}

			// Only fields whose flags were set end up in the patch, so an
			// edit never clobbers the rest of the record.
			var p store.Patch
			changed := false
			if cmd.Flags().Changed("date") {
				if _, err := record.ParseDate(ro.Date); err != nil {
					return err
				}
				p.Date = store.String(ro.Date)
				changed = true
			}
			if cmd.Flags().Changed("title") {
				p.Title = store.String(title)
				changed = true
			}
			if cmd.Flags().Changed("content") {
				p.Content = store.String(ro.Content)
				changed = true
			}
			if cmd.Flags().Changed("mood") {
				p.Mood = store.Int(ro.Mood)
				changed = true
			}
			if cmd.Flags().Changed("tag") {
				p.Tags = store.Tags(ro.Tags)
				changed = true
			}
			if !changed {
				return errors.New("nothing to change")
			}

			svc, err := service()
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:      io.ID,
				Patch:   p,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddRecordArgs(cmd, ro)
	options.AddMoodArgs(cmd, ro)
	cmd.Flags().StringVar(&title, "title", "", "Set the entry title.")

	topLevel.AddCommand(cmd)
}
