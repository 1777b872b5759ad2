// Package ui is a small interactive browser over a record snapshot: a date
// index on the left, that day's entries on the right.
package ui

import (
	"context"
	"strings"

	tui "github.com/marcusolsson/tui-go"

	"github.com/Naheeria/mindcontrol/pkg/query"
	"github.com/Naheeria/mindcontrol/pkg/record"
)

func Do(ctx context.Context, records ...*record.Record) error {
	groups := query.GroupByDate(records)
	dates := query.SortedDates(groups)

	dTable := tui.NewTable(1, 0)

	index := tui.NewVBox(
		dTable,
		tui.NewSpacer(),
	)
	index.SetBorder(true)
	index.SetSizePolicy(tui.Preferred, tui.Expanding)

	eTable := tui.NewTable(1, 0)
	eTable.SetFocused(true)

	eTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left️ or right arrows to navigate, ESC or 'q' to QUIT`)

	day := tui.NewVBox(eTable)
	day.SetBorder(true)
	day.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(index, day)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	u, err := tui.New(root)
	if err != nil {
		return err
	}

	d := impl{
		groups:     groups,
		dates:      dates,
		index:      dTable,
		indexTitle: "dates",
		indexView:  index,
		day:        eTable,
		dayView:    day,
	}
	d.populateIndex()

	dTable.OnSelectionChanged(func(table *tui.Table) {
		d.populateDay()
	})

	u.SetKeybinding("Left", func() {
		d.focusIndex()
	})

	u.SetKeybinding("Right", func() {
		d.focusDay()
	})

	u.SetKeybinding("Esc", func() { u.Quit() })
	u.SetKeybinding("q", func() { u.Quit() })

	d.populateDay()
	d.focusDay()

	if err := u.Run(); err != nil {
		return err
	}
	return nil
}

type impl struct {
	groups map[string][]*record.Record
	dates  []string

	dirty string

	index      *tui.Table
	indexTitle string
	indexView  *tui.Box

	day      *tui.Table
	dayView  *tui.Box
	dayTitle string
}

func (d *impl) focusIndex() {
	d.index.SetFocused(true)
	d.indexView.SetTitle(strings.ToUpper(d.indexTitle))

	d.day.SetFocused(false)
	d.dayView.SetTitle("")
}

func (d *impl) focusDay() {
	d.index.SetFocused(false)
	d.indexView.SetTitle(d.indexTitle)

	d.day.SetFocused(true)
	d.dayView.SetTitle(d.dayTitle)
}

func (d *impl) populateIndex() {
	d.index.RemoveRows()
	d.index.Select(0)

	for _, date := range d.dates {
		d.index.AppendRow(tui.NewLabel(date))
	}
}

func (d *impl) populateDay() {
	selected := ""
	if i := d.index.Selected(); i >= 0 && i < len(d.dates) {
		selected = d.dates[i]
	}

	if d.dirty != selected {
		d.day.RemoveRows()

		d.dayTitle = selected

		for _, r := range d.groups[selected] {
			d.day.AppendRow(tui.NewLabel(r.String()))
		}
		d.dirty = selected
	}
}
