package state

// Selected returns the view currently marked selected, or nil for an empty menu.
func (s *Session) Selected() *ItemView {
	return s.selected
}

func (s *Session) markSelected() {
	v := s.window.At(s.Index - s.FirstVisible)
	if v == nil {
		s.selected = nil
		return
	}
	v.Selected = true
	s.selected = v
}

func (s *Session) clearSelection() {
	if s.selected == nil {
		return
	}
	s.selected.Selected = false
	s.selected = nil
}
