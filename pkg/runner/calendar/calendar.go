package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/app"
	"github.com/Naheeria/mindcontrol/pkg/printers"
)

type Calendar struct {
	On time.Time

	Service *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	all, err := n.Service.Records(ctx)
	if err != nil {
		return err
	}

	fmt.Println("")

	pp := printers.PrettyPrint{}
	pp.Calendar(n.On, all...)

	return nil
}
