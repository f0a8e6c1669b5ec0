package options

import (
	"github.com/spf13/cobra"
)

// UIOptions selects the interactive surface.
type UIOptions struct {
	Classic bool
}

func AddClassicArg(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().BoolVar(&o.Classic, "classic", false,
		"Open the read-only classic browser instead of the recorder UI.")
}
