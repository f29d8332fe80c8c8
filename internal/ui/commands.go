package ui

import (
	"github.com/atomicstack/menu-overlay/internal/protocol"
	"github.com/atomicstack/menu-overlay/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleCommandMsg(msg tea.Msg) tea.Cmd {
	local, ok := msg.(command.Msg)
	if !ok || local.Command == nil {
		return nil
	}
	m.apply(local.Command)
	return nil
}

func (m *Model) moveCmd(label string, index int) tea.Cmd {
	return m.bus.Execute(command.Request{ID: "move", Label: label, Command: protocol.Move{Index: index}})
}

func (m *Model) closeCmd(label string) tea.Cmd {
	return m.bus.Execute(command.Request{ID: "close", Label: label, Command: protocol.Close{}})
}
