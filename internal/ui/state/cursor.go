package state

// Move selects index and scrolls the window just far enough to show it. Views
// that stay on screen are reused; only rows scrolling into view are rendered.
// It reports whether the selection changed.
func (s *Session) Move(index int) bool {
	if index < 0 || index >= len(s.Items) || index == s.Index {
		return false
	}
	s.clearSelection()
	s.Index = index

	last := s.LastVisible()
	switch {
	case index < s.FirstVisible:
		offset := s.FirstVisible - index
		if offset >= s.MaxVisibleItems {
			s.rebuild()
			break
		}
		for i := s.FirstVisible - 1; i >= index; i-- {
			s.window.PopBack()
			s.window.PushFront(s.render(s.Items[i], i))
		}
		s.FirstVisible -= offset
	case index > last:
		offset := index - last
		if offset >= s.MaxVisibleItems {
			s.rebuild()
			break
		}
		for i := last + 1; i <= index; i++ {
			s.window.PopFront()
			s.window.PushBack(s.render(s.Items[i], i))
		}
		s.FirstVisible += offset
	}

	s.markSelected()
	return true
}

func (s *Session) rebuild() {
	s.window.Clear()
	s.drawItems()
}

// Step returns the index delta rows away from the selection, clamped to the list.
func (s *Session) Step(delta int) int {
	n := len(s.Items)
	if n == 0 {
		return 0
	}
	target := s.Index + delta
	if target < 0 {
		target = 0
	}
	if target >= n {
		target = n - 1
	}
	return target
}

// PageSize returns how many rows a page jump covers.
func (s *Session) PageSize() int {
	total := len(s.Items)
	if total == 0 {
		return 0
	}
	size := s.MaxVisibleItems
	if size <= 0 || size > total {
		size = total
	}
	return size
}
