package ui

import (
	"testing"

	"github.com/atomicstack/menu-overlay/internal/protocol"
	"github.com/atomicstack/menu-overlay/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerForResolvesPointerMessages(t *testing.T) {
	m := NewModel(0, false, nil, nil, nil)
	if m.handlerFor(tea.WindowSizeMsg{}) == nil {
		t.Fatalf("expected handler for value message")
	}
	if m.handlerFor(&tea.WindowSizeMsg{}) == nil {
		t.Fatalf("expected handler for pointer message")
	}
	if m.handlerFor(nil) != nil {
		t.Fatalf("expected no handler for nil message")
	}
	if m.handlerFor(struct{}{}) != nil {
		t.Fatalf("expected no handler for unknown message")
	}
}

func TestInitWithoutFeedReturnsNil(t *testing.T) {
	m := NewModel(0, false, nil, nil, nil)
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("expected nil init command without a feed")
	}
}

func TestWindowSizeBoundsContentWidth(t *testing.T) {
	m := NewModel(60, false, nil, nil, nil)
	if got := m.contentWidth(); got != 60 {
		t.Fatalf("expected configured width before resize, got %d", got)
	}
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if m.termWidth != 30 || m.termHeight != 10 {
		t.Fatalf("expected terminal size to be stored, got %dx%d", m.termWidth, m.termHeight)
	}
	if got := m.contentWidth(); got != 30 {
		t.Fatalf("expected width bounded by terminal, got %d", got)
	}

	m = NewModel(0, false, nil, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 10})
	if got := m.contentWidth(); got != 50 {
		t.Fatalf("expected terminal width when unset, got %d", got)
	}
}

func TestNegativeWidthIsUnset(t *testing.T) {
	m := NewModel(-5, false, nil, nil, nil)
	if m.menuWidth != 0 {
		t.Fatalf("expected width 0, got %d", m.menuWidth)
	}
}

func TestCommandMsgAppliesCommand(t *testing.T) {
	m := NewModel(0, false, nil, nil, nil)
	m.Update(command.Msg{Command: protocol.Close{}})
	if m.Session() != nil {
		t.Fatalf("close on a closed menu should stay closed")
	}
	h := NewHarness(m)
	h.SendHost(`["open", {"items": [{"label": "a"}, {"label": "b"}]}]`)
	m.Update(command.Msg{Command: protocol.Move{Index: 1}})
	if got := m.Session().Index; got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}
