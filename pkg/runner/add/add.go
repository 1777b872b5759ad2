package add

import (
	"context"
	"errors"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/printers"
	"github.com/Naheeria/mindcontrol/pkg/query"
	"github.com/Naheeria/mindcontrol/pkg/record"
)

type Add struct {
	Kind    record.Kind
	Date    string
	Title   string
	Content string
	Mood    int
	Tags    []string
	Retro   record.Retro

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if n.Date == "" {
		n.Date = record.FormatDate(time.Now())
	} else if _, err := record.ParseDate(n.Date); err != nil {
		return err
	}

	content := n.Content
	if n.Kind == record.Retrospective && !n.Retro.Empty() {
		content = n.Retro.Content()
	}

	r := record.New(n.Kind, n.Date, n.Title, content)
	r.Mood = n.Mood
	r.Tags = n.Tags

	if _, err := n.Service.Add(ctx, r); err != nil {
		return err
	}

	all, err := n.Service.Records(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(r.Date)
	pp.Day(query.Apply(all, query.Filter{Kind: record.Any, Date: r.Date})...)

	return nil
}
