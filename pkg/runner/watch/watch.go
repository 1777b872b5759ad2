package watch

import (
	"context"
	"errors"
	"fmt"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/printers"
)

// Watch reprints the grouped collection every time the store changes, until
// interrupted.
type Watch struct {
	ShowID bool

	Service *app.Service
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not watch, no service")
	}

	snapshots, err := n.Service.Watch(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	for all := range snapshots {
		fmt.Print("\033[H\033[2J") // clear between snapshots
		pp.Grouped(all...)
	}
	return nil
}
