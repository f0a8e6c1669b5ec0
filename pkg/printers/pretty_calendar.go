package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/viewmodel"
)

// Calendar prints day groups most recent first, one titled section per day.
// Events keep the order they were bucketed in; an event spanning two UTC days
// shows up under both.
func (pp *PrettyPrint) Calendar(groups map[string][]event.UserEvent, keys []string) {
	if groups == nil {
		pp.Loading()
		return
	}
	for _, key := range keys {
		pp.Title(viewmodel.DayLabel(key))
		pp.Events(groups[key]...)
	}
}

// Table lists events with their ids, for picking edit/rm targets.
func (pp *PrettyPrint) Table(events ...event.UserEvent) {
	if len(events) == 0 {
		pp.Loading()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Start"), bold("End"), bold("Duration"), bold("Title"))
	for _, e := range events {
		tbl.AddRow(
			e.ID,
			e.DateStart.String(),
			e.DateEnd.String(),
			viewmodel.Clock(e.Duration()),
			e.Title,
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func bold(in string) string {
	return color.New(color.Bold).Sprint(in)
}
