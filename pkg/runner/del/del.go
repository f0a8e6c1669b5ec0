package del

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/state"
)

// Del removes the event with the given id once the service confirms.
type Del struct {
	ID    int
	Store *state.Store
}

func (n *Del) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}

	n.Store.Delete(ctx, n.ID)
	if err := n.Store.Await(ctx); err != nil {
		return err
	}

	f := color.New(color.Faint)
	_, _ = f.Println(fmt.Sprintf("deleted event %d", n.ID))
	return nil
}
