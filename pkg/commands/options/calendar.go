package options

import (
	"github.com/spf13/cobra"
)

// CalendarOptions selects between the day-grouped calendar and a flat table.
type CalendarOptions struct {
	List bool
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().BoolVar(&o.List, "list", false,
		"Print a flat table with ids instead of the calendar.")
}
