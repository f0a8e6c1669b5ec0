package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/printers"
	"tableflip.dev/tempo/pkg/state"
)

// Edit retitles the event with the given id. An unchanged title never
// reaches the network.
type Edit struct {
	ID    int
	Title string
	Store *state.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}

	n.Store.Load(ctx)
	if err := n.Store.Await(ctx); err != nil {
		return err
	}

	snap := n.Store.Snapshot()
	if _, ok := snap.ByID[n.ID]; !ok {
		return fmt.Errorf("edit: no event with id %d", n.ID)
	}

	if !n.Store.EditTitle(ctx, n.ID, n.Title) {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("title unchanged, nothing to do")
		return nil
	}
	if err := n.Store.Await(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Events(n.Store.Snapshot().ByID[n.ID])
	return nil
}
