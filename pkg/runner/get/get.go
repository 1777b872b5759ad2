package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/printers"
	"github.com/Naheeria/mindcontrol/pkg/query"
)

type Get struct {
	ShowID bool
	JSON   bool
	Filter query.Filter

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	all, err := n.Service.Records(ctx)
	if err != nil {
		return err
	}
	filtered := query.Apply(all, n.Filter)

	if n.JSON {
		b, err := json.MarshalIndent(filtered, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	fmt.Println("")

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Grouped(filtered...)

	return nil
}
