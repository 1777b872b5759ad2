package ui

import (
	"context"
	"errors"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/ui"
)

type UI struct {
	Service *app.Service
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not run ui, no service")
	}

	all, err := n.Service.Records(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return errors.New("no records yet, add one first")
	}

	return ui.Do(ctx, all...)
}
