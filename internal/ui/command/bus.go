package command

import (
	"github.com/atomicstack/menu-overlay/internal/logging/events"
	"github.com/atomicstack/menu-overlay/internal/protocol"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates a locally generated menu command.
type Request struct {
	ID      string
	Label   string
	Command protocol.Command
}

// Msg carries a locally generated command back into the update loop, where
// it is applied exactly like a host message.
type Msg struct {
	Command protocol.Command
}

// Bus coordinates the execution of local navigation commands.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a command into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Command == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		wire, err := protocol.Encode(req.Command)
		if err != nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		events.Command.Result(req.ID, req.Label, string(wire))
		return Msg{Command: req.Command}
	}
}
