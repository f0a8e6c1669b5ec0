// Package ui is the classic read-only browser: days on the left, that day's
// events on the right.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/viewmodel"
)

// Do opens the browser over the grouped events. Keys is the display order of
// the day panes, most recent first.
func Do(ctx context.Context, groups map[string][]event.UserEvent, keys []string) error {
	if len(keys) == 0 {
		return errors.New("nothing to browse, no recorded events")
	}

	dTable := tui.NewTable(1, 0)

	days := tui.NewVBox(
		dTable,
		tui.NewSpacer(),
	)
	days.SetBorder(true)
	days.SetSizePolicy(tui.Preferred, tui.Expanding)

	eTable := tui.NewTable(1, 0)
	eTable.SetFocused(true)
	eTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left️ or right arrows to navigate, ESC or 'q' to QUIT`)

	dayView := tui.NewVBox(eTable)
	dayView.SetTitle(viewmodel.DayLabel(keys[0]))
	dayView.SetBorder(true)
	dayView.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(days, dayView)

	root := tui.NewVBox(
		selector,
		tui.NewSpacer(),
		status,
	)

	u, err := tui.New(root)
	if err != nil {
		return err
	}

	d := impl{
		groups:    groups,
		keys:      keys,
		days:      dTable,
		daysTitle: "days",
		daysView:  days,
		events:    eTable,
		dayView:   dayView,
	}
	d.populateDays()

	dTable.OnSelectionChanged(func(table *tui.Table) {
		d.populateDay()
	})

	u.SetKeybinding("Left", func() {
		d.focusDays()
	})

	u.SetKeybinding("Right", func() {
		d.focusDay()
	})

	u.SetKeybinding("Esc", func() { u.Quit() })
	u.SetKeybinding("q", func() { u.Quit() })

	d.populateDay()
	d.focusDays()

	if err := u.Run(); err != nil {
		return err
	}
	return nil
}

type impl struct {
	groups map[string][]event.UserEvent
	keys   []string

	dirty string

	days      *tui.Table
	daysTitle string
	daysView  *tui.Box

	events   *tui.Table
	dayView  *tui.Box
	dayTitle string
}

func (d *impl) focusDays() {
	d.days.SetFocused(true)
	d.daysView.SetTitle(strings.ToUpper(d.daysTitle))

	d.events.SetFocused(false)
	d.dayView.SetTitle(d.dayTitle)
}

func (d *impl) focusDay() {
	d.days.SetFocused(false)
	d.daysView.SetTitle(d.daysTitle)

	d.events.SetFocused(true)
	d.dayView.SetTitle(strings.ToUpper(d.dayTitle))
}

func (d *impl) populateDays() {
	d.days.RemoveRows()
	d.days.Select(0)

	for _, key := range d.keys {
		d.days.AppendRow(tui.NewLabel(viewmodel.DayLabel(key)))
	}
}

func (d *impl) populateDay() {
	selected := ""
	if d.days.Selected() >= 0 && d.days.Selected() < len(d.keys) {
		selected = d.keys[d.days.Selected()]
	}

	if d.dirty != selected {
		d.events.RemoveRows()

		d.dayTitle = viewmodel.DayLabel(selected)
		d.dayView.SetTitle(d.dayTitle)

		for _, e := range d.groups[selected] {
			line := fmt.Sprintf("%s – %s  %s",
				e.DateStart.Local().Format("15:04"),
				e.DateEnd.Local().Format("15:04"),
				e.Title)
			d.events.AppendRow(tui.NewLabel(line))
		}
		d.dirty = selected
	}
}
