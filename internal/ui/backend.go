package ui

import (
	"fmt"

	"github.com/atomicstack/menu-overlay/internal/backend"
	"github.com/atomicstack/menu-overlay/internal/logging"
	"github.com/atomicstack/menu-overlay/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForHostEvent(f *backend.Feed) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-f.Events()
		if !ok {
			return hostDoneMsg{}
		}
		return hostEventMsg{event: evt}
	}
}

type hostEventMsg struct {
	event backend.Event
}

type hostDoneMsg struct{}

func (m *Model) handleHostEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(hostEventMsg)
	if !ok {
		return nil
	}
	m.applyHostEvent(eventMsg.event)
	if m.feed != nil {
		return waitForHostEvent(m.feed)
	}
	return nil
}

// applyHostEvent applies one host message. Rejected and ineffective messages
// only leave a trace entry.
func (m *Model) applyHostEvent(evt backend.Event) {
	if evt.Err != nil {
		events.Host.Ignored(evt.Raw, evt.Err.Error())
		return
	}
	if evt.Command == nil {
		events.Host.Ignored(evt.Raw, "no command")
		return
	}
	events.Host.Message(evt.Command.Name(), evt.Raw)
	if res := m.apply(evt.Command); !res.Changed() {
		events.Host.Ignored(evt.Raw, "no effect")
	}
}

// handleHostDoneMsg runs once the host input ends. Without keyboard
// navigation nothing else can drive the menu, so the program exits.
func (m *Model) handleHostDoneMsg(msg tea.Msg) tea.Cmd {
	var (
		err   error
		stats backend.Stats
	)
	if m.feed != nil {
		err = m.feed.Err()
		stats = m.feed.Stats()
	}
	events.Host.Done(stats.Lines, stats.Rejected, err)
	if err != nil {
		logging.Error(fmt.Errorf("host input: %w", err))
	}
	m.feed = nil
	if m.interactive {
		return nil
	}
	return tea.Quit
}
