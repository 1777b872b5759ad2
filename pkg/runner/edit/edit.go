package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/store"
)

type Edit struct {
	ID    string
	Patch store.Patch

	Service *app.Service
}

// Do routes the patch through an editing session so the save-then-close
// sequencing is the same one interactive editors use.
func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.ID == "" {
		return errors.New("edit requires an id")
	}

	session := n.Service.NewSession(n.ID)
	session.Touch(n.Patch)
	if err := session.Close(ctx, true); err != nil {
		return err
	}

	fmt.Printf("updated %s\n", n.ID)
	return nil
}
