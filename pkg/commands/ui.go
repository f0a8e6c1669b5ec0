package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tempo/pkg/client"
	"tableflip.dev/tempo/pkg/commands/options"
	"tableflip.dev/tempo/pkg/runner/ui"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/store"
	classic "tableflip.dev/tempo/pkg/ui"
	"tableflip.dev/tempo/pkg/viewmodel"
)

func addUI(topLevel *cobra.Command) {
	uo := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
tempo ui
tempo ui --classic
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			st := state.New(ctx, client.New(cfg.URL()))

			if uo.Classic {
				st.Load(ctx)
				if err := st.Await(ctx); err != nil {
					return err
				}
				events := viewmodel.ToArray(st.Snapshot())
				groups := viewmodel.GroupByDay(events)
				return classic.Do(ctx, groups, viewmodel.SortedDayKeys(groups))
			}

			i := ui.UI{Store: st}
			return i.Do(ctx)
		},
	}

	options.AddClassicArg(cmd, uo)

	topLevel.AddCommand(cmd)
}
