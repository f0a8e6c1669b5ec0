package options

import (
	"github.com/spf13/cobra"
)

// RecordOptions captures recorder flags.
type RecordOptions struct {
	Title string
}

func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title for the recorded event.")
}
