package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/client"
	"tableflip.dev/tempo/pkg/runner/edit"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Retitle a recorded event.",
		Example: `
tempo edit 3 "weekly planning"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("expected an event id and a new title")
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
			s := edit.Edit{
				ID:    id,
				Title: strings.Join(args[1:], " "),
				Store: st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
