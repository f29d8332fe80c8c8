package state

import (
	"fmt"

	"github.com/atomicstack/menu-overlay/internal/menu"
)

// Session encapsulates an open menu: the full item list, the selected index,
// and the window of rendered views that keeps the selection visible.
type Session struct {
	Header          *menu.Header
	Title           string
	Items           []menu.Item
	Index           int
	MaxVisibleItems int
	FirstVisible    int
	Align           menu.Align

	window   Window
	selected *ItemView
	render   Renderer
}

// NewSession opens a session for opts. A nil renderer uses RenderItem.
func NewSession(opts menu.Options, render Renderer) *Session {
	if render == nil {
		render = RenderItem
	}
	s := &Session{render: render}
	s.Reopen(opts)
	return s
}

// Reopen replaces the session contents in place, rebuilding the window.
func (s *Session) Reopen(opts menu.Options) {
	s.Header = cloneHeader(opts.Header)
	s.Title = opts.Title
	s.Items = CloneItems(opts.Items)
	s.MaxVisibleItems = opts.MaxVisibleItems
	if s.MaxVisibleItems <= 0 {
		s.MaxVisibleItems = menu.DefaultMaxVisibleItems
	}
	s.Align = opts.Align.Normalize()
	s.Index = clampIndex(opts.Index, len(s.Items))
	s.selected = nil
	s.window.Clear()
	s.drawItems()
	s.markSelected()
}

func clampIndex(index, n int) int {
	if n == 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}

// drawItems fills an empty window starting at the first index that keeps
// Index on the last visible row.
func (s *Session) drawItems() {
	if s.Index < s.MaxVisibleItems {
		s.FirstVisible = 0
	} else {
		s.FirstVisible = s.Index - s.MaxVisibleItems + 1
	}
	end := s.FirstVisible + s.MaxVisibleItems
	if end > len(s.Items) {
		end = len(s.Items)
	}
	for i := s.FirstVisible; i < end; i++ {
		s.window.PushBack(s.render(s.Items[i], i))
	}
}

// LastVisible is the item index the bottom row would show for a full window.
func (s *Session) LastVisible() int {
	return s.FirstVisible + s.MaxVisibleItems - 1
}

// Visible returns the rendered views in display order.
func (s *Session) Visible() []*ItemView {
	return s.window.Views()
}

// WindowLen returns the number of rendered views.
func (s *Session) WindowLen() int {
	return s.window.Len()
}

// Position formats the 1-based selection counter.
func (s *Session) Position() string {
	if len(s.Items) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", s.Index+1, len(s.Items))
}

// Description returns the selected item's description, if any.
func (s *Session) Description() string {
	if s.Index < 0 || s.Index >= len(s.Items) {
		return ""
	}
	return s.Items[s.Index].Description
}

// ShowArrows reports whether more items exist than fit in the window.
func (s *Session) ShowArrows() bool {
	return len(s.Items) > s.MaxVisibleItems
}
