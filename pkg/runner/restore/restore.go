package restore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/backup"
)

type Restore struct {
	Path string

	Service *app.Service
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not restore, no service")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}

	count, err := n.Service.ImportCSV(ctx, string(data))
	if errors.Is(err, backup.ErrNothingToImport) {
		// A distinct outcome, not a failure: the file parsed but held no
		// usable rows.
		fmt.Println("nothing to import")
		return nil
	}
	if err != nil {
		return err
	}

	switch count {
	case 1:
		fmt.Println("restored 1 record")
	default:
		fmt.Printf("restored %d records\n", count)
	}
	return nil
}
