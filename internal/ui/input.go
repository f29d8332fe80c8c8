package ui

import (
	"unicode"

	"github.com/atomicstack/menu-overlay/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// handleJumpInput extends the jump query with printable input and selects the
// best matching label.
func (m *Model) handleJumpInput(msg tea.KeyMsg) tea.Cmd {
	var text []rune
	switch msg.Type {
	case tea.KeyRunes:
		text = msg.Runes
	case tea.KeySpace:
		text = []rune{' '}
	default:
		return nil
	}
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return nil
		}
	}
	if len(text) == 0 {
		return nil
	}
	m.jumpQuery += string(text)
	return m.jump()
}

func (m *Model) handleJumpBackspace() tea.Cmd {
	runes := []rune(m.jumpQuery)
	if len(runes) == 0 {
		return nil
	}
	m.jumpQuery = string(runes[:len(runes)-1])
	if m.jumpQuery == "" {
		return nil
	}
	return m.jump()
}

func (m *Model) jump() tea.Cmd {
	s := m.Session()
	if s == nil {
		return nil
	}
	idx := s.MatchIndex(m.jumpQuery)
	events.Key.Jump(m.jumpQuery, idx)
	if idx < 0 {
		return nil
	}
	return m.moveCmd("jump", idx)
}
