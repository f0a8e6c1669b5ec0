package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/client"
	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/record"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/store"
)

func addRecord(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Start the stopwatch, stop it with enter, and save the interval as an event.",
		Example: `
tempo record
tempo record --title "standup"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			st := state.New(context.Background(), client.New(cfg.URL()))
			s := record.Record{
				Title: ro.Title,
				Store: st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRecordArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
