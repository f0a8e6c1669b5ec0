// Package ui hosts the interactive session: the recorder plus the calendar
// of recorded events, dispatching intents into the state store.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tempo/pkg/event"
	"tableflip.dev/tempo/pkg/state"
	"tableflip.dev/tempo/pkg/viewmodel"
)

// UI runs the recorder/calendar session over the given store.
type UI struct {
	Store *state.Store
}

// Do blocks until the user quits.
func (n *UI) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not open ui, no store")
	}
	p := tea.NewProgram(New(ctx, n.Store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type mode int

const (
	modeNormal mode = iota
	modeEdit
)

// eventItem is one calendar row: an event under one of its day buckets. An
// event spanning two UTC days appears under both.
type eventItem struct {
	e   event.UserEvent
	day string
}

func (it eventItem) Title() string {
	return fmt.Sprintf("%s – %s  %s",
		it.e.DateStart.Local().Format("15:04"),
		it.e.DateEnd.Local().Format("15:04"),
		it.e.Title)
}
func (it eventItem) Description() string { return viewmodel.DayLabel(it.day) }
func (it eventItem) FilterValue() string { return it.e.Title }

// Model contains UI state.
type Model struct {
	store *state.Store
	ctx   context.Context
	mode  mode

	recorder state.Recorder
	now      time.Time

	calendar list.Model
	input    textinput.Model

	loaded bool
	status string

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the store.
func New(ctx context.Context, store *state.Store) Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 80, 20)
	l.Title = "Calendar"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	ti := textinput.New()
	ti.Placeholder = "Event title"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	return Model{
		store:    store,
		ctx:      ctx,
		mode:     modeNormal,
		now:      time.Now(),
		calendar: l,
		input:    ti,
		status:   "space record/stop, e edit title, d delete, r reload, q quit",
	}
}

// Init kicks off the initial load and the store subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.listenChanges(), m.listenFailures())
}

func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		m.store.Load(m.ctx)
		return nil
	}
}

func (m *Model) listenChanges() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.store.Notify():
			return storeChangedMsg{}
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m *Model) listenFailures() tea.Cmd {
	return func() tea.Msg {
		select {
		case reason := <-m.store.Failures():
			return failureMsg(reason)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// messages
type storeChangedMsg struct{}
type failureMsg string
type tickMsg time.Time

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()

	case storeChangedMsg:
		m.loaded = true
		m.refreshCalendar()
		cmds = append(cmds, m.listenChanges())

	case failureMsg:
		m.loaded = true
		m.status = "ERR: " + string(msg)
		cmds = append(cmds, m.listenFailures())

	case tickMsg:
		m.now = time.Time(msg)
		if m.recorder.Running() {
			// The tick re-arms only while recording, so stopping cancels it.
			cmds = append(cmds, tick())
		}

	case tea.KeyPressMsg:
		switch m.mode {
		case modeEdit:
			switch msg.String() {
			case "enter":
				title := strings.TrimSpace(m.input.Value())
				if it, ok := m.currentEvent(); ok && title != "" {
					if m.store.EditTitle(m.ctx, it.e.ID, title) {
						m.status = "Saving..."
					} else {
						m.status = "Title unchanged"
					}
				}
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				skipListRouting = true
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Edit cancelled"
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}

		case modeNormal:
			switch msg.String() {
			case " ":
				now := time.Now()
				m.now = now
				if start, end, ok := m.recorder.Stop(now); ok {
					m.store.CreateFromRecorder(m.ctx, start, end, "")
					m.status = "Recorded " + viewmodel.Clock(end.Sub(start))
				} else if m.recorder.Start(now) {
					m.status = "Recording (space to stop)"
					cmds = append(cmds, tick())
				}
				skipListRouting = true

			case "e", "i":
				if it, ok := m.currentEvent(); ok {
					m.mode = modeEdit
					m.input.SetValue(it.e.Title)
					m.input.CursorEnd()
					if cmd := m.input.Focus(); cmd != nil {
						cmds = append(cmds, cmd)
					}
					cmds = append(cmds, textinput.Blink)
				}
				skipListRouting = true

			case "d", "x":
				if it, ok := m.currentEvent(); ok {
					m.store.Delete(m.ctx, it.e.ID)
					m.status = "Deleting..."
				}
				skipListRouting = true

			case "r":
				m.store.Load(m.ctx)
				m.status = "Reloading..."
				skipListRouting = true

			case "q", "esc", "ctrl+c":
				cmds = append(cmds, tea.Quit)
				skipListRouting = true
			}
		}
	}

	if m.mode == modeNormal && !skipListRouting {
		var cmd tea.Cmd
		m.calendar, cmd = m.calendar.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refreshCalendar rebuilds the day-grouped rows from the store snapshot,
// keeping the cursor in place when possible.
func (m *Model) refreshCalendar() {
	events := viewmodel.ToArray(m.store.Snapshot())
	groups := viewmodel.GroupByDay(events)

	items := make([]list.Item, 0, len(events))
	for _, key := range viewmodel.SortedDayKeys(groups) {
		for _, e := range groups[key] {
			items = append(items, eventItem{e: e, day: key})
		}
	}

	selected := m.calendar.Index()
	m.calendar.SetItems(items)
	if selected >= len(items) {
		selected = len(items) - 1
	}
	if selected >= 0 {
		m.calendar.Select(selected)
	}
}

func (m *Model) currentEvent() (eventItem, bool) {
	if len(m.calendar.Items()) == 0 {
		return eventItem{}, false
	}
	sel := m.calendar.SelectedItem()
	if sel == nil {
		return eventItem{}, false
	}
	it, ok := sel.(eventItem)
	return it, ok
}

// View renders the recorder header, the calendar, and overlays.
func (m Model) View() string {
	var header string
	if m.recorder.Running() {
		rec := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("⏺")
		header = fmt.Sprintf("%s %s recording", rec, viewmodel.Clock(m.recorder.Elapsed(m.now)))
	} else {
		header = lipgloss.NewStyle().Faint(true).Render("○ idle (space to start)")
	}

	body := header + "\n\n"
	if !m.loaded {
		body += lipgloss.NewStyle().Italic(true).Render("Loading...")
	} else {
		body += m.calendar.View()
	}

	if m.mode == modeEdit {
		body += "\n\nEdit: " + m.input.View()
	}

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.status)
	return body + "\n\n" + status
}

// applySizes recalculates the calendar size from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 2
	if width < 40 {
		width = 40
	}
	height := m.termHeight - 7 // recorder header, overlays, status
	if height < 10 {
		height = 10
	}
	m.calendar.SetSize(width, height)
}
