package ui

import (
	"github.com/atomicstack/menu-overlay/internal/backend"
	"github.com/atomicstack/menu-overlay/internal/protocol"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model without a terminal. Host lines and key presses
// go through the same update path the running program uses.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// SendHost decodes line as a host message and delivers it to the model.
func (h *Harness) SendHost(line string) {
	raw := []byte(line)
	cmd, err := protocol.Decode(raw)
	h.Send(hostEventMsg{event: backend.Event{Raw: line, Command: cmd, Err: err}})
}

// SendKey delivers a key press by its binding name, e.g. "down" or "esc".
func (h *Harness) SendKey(name string) {
	h.Send(keyMsgFor(name))
}

// Type delivers text as one rune key press per character.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// EndHost signals that host input has ended.
func (h *Harness) EndHost() {
	h.Send(hostDoneMsg{})
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"backspace": tea.KeyBackspace,
	"esc":       tea.KeyEsc,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+p":    tea.KeyCtrlP,
	"space":     tea.KeySpace,
}

func keyMsgFor(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
