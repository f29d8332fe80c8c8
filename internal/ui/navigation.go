package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if !m.interactive {
		return nil
	}
	s := m.Session()
	if s == nil {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		return m.navigate("up", s.Step(-1))
	case key.Matches(keyMsg, m.keys.Down):
		return m.navigate("down", s.Step(1))
	case key.Matches(keyMsg, m.keys.Home):
		return m.navigate("home", 0)
	case key.Matches(keyMsg, m.keys.End):
		return m.navigate("end", s.Step(len(s.Items)))
	case key.Matches(keyMsg, m.keys.PageUp):
		return m.navigate("pgup", s.Step(-s.PageSize()))
	case key.Matches(keyMsg, m.keys.PageDown):
		return m.navigate("pgdown", s.Step(s.PageSize()))
	case key.Matches(keyMsg, m.keys.Close):
		m.jumpQuery = ""
		return m.closeCmd("esc")
	case key.Matches(keyMsg, m.keys.Backspace):
		return m.handleJumpBackspace()
	}
	return m.handleJumpInput(keyMsg)
}

func (m *Model) navigate(label string, index int) tea.Cmd {
	m.jumpQuery = ""
	return m.moveCmd(label, index)
}
