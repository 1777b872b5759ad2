package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Naheeria/mindcontrol/pkg/app"
)

type Export struct {
	// Path receives the document; empty writes to stdout.
	Path string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	doc, err := n.Service.ExportCSV(ctx)
	if err != nil {
		return err
	}

	if n.Path == "" {
		fmt.Print(doc)
		return nil
	}

	if err := os.WriteFile(n.Path, []byte(doc), 0o644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", n.Path)
	return nil
}
