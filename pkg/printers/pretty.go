package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/viewmodel"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1234  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Loading marks the nothing-to-group case; whether the set is still loading
// or truly empty is the caller's call.
func (pp *PrettyPrint) Loading() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println("loading...")
}

// Events prints one line per event in the order given.
func (pp *PrettyPrint) Events(events ...event.UserEvent) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	d := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range events {
		if pp.ShowID {
			id := fmt.Sprintf("%d", e.ID)
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		start, end := clockRange(e)
		_, _ = d.Printf("%s – %s  ", start, end)
		_, _ = t.Print(e.Title)
		_, _ = d.Printf("  %s\n", viewmodel.Clock(e.Duration()))
	}
	_, _ = t.Println("")
}

func clockRange(e event.UserEvent) (string, string) {
	return e.DateStart.Local().Format("15:04"), e.DateEnd.Local().Format("15:04")
}
