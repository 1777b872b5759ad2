package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/Naheeria/mindcontrol/pkg/app"
)

type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if n.ID == "" {
		return errors.New("delete requires an id")
	}

	if err := n.Service.Delete(ctx, n.ID); err != nil {
		return err
	}

	fmt.Printf("deleted %s\n", n.ID)
	return nil
}
