package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/viewmodel"
)

// Get fetches the event collection and prints it grouped by day, or as a
// flat table with ids when List is set.
type Get struct {
	ShowID bool
	List   bool
	JSON   bool
	Store  *state.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	n.Store.Load(ctx)
	if err := n.Store.Await(ctx); err != nil {
		return err
	}
	events := viewmodel.ToArray(n.Store.Snapshot())

	if n.JSON {
		b, err := json.Marshal(events)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	if n.List {
		pp.Table(events...)
		return nil
	}

	groups := viewmodel.GroupByDay(events)
	pp.Calendar(groups, viewmodel.SortedDayKeys(groups))
	return nil
}
