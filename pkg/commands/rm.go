package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/client"
	"tableflip.dev/tempo/pkg/runner/del"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/store"
)

func addRm(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a recorded event.",
		Aliases: []string{"delete"},
		Example: `
tempo rm 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected a single event id")
			}
			var err error
			id, err = strconv.Atoi(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			st := state.New(context.Background(), client.New(cfg.URL()))
			s := del.Del{
				ID:    id,
				Store: st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
