package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/printers"
)

type Stats struct {
	Year  int
	Month time.Month

	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get stats, no service")
	}

	s, err := n.Service.Stats(ctx, n.Year, n.Month)
	if err != nil {
		return err
	}

	fmt.Println("")

	pp := printers.PrettyPrint{}
	pp.Stats(n.Year, n.Month, s)

	return nil
}
