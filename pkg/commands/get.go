package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"tableflip.dev/tempo/pkg/client"
	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/get"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get recorded events as a calendar.",
		Example: `
tempo get
tempo get --list
tempo get --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			st := state.New(context.Background(), client.New(cfg.URL()))
			s := get.Get{
				ShowID: io.ShowID,
				List:   co.List,
				JSON:   output.JSON,
				Store:  st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCalendarArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
