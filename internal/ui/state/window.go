package state

import "github.com/atomicstack/menu-overlay/internal/menu"

// ItemView is the rendered form of one menu entry inside the visible window.
type ItemView struct {
	Index    int
	Label    string
	Selected bool
}

// Renderer builds the view for the item at the given list position.
type Renderer func(item menu.Item, index int) *ItemView

// RenderItem is the default Renderer.
func RenderItem(item menu.Item, index int) *ItemView {
	return &ItemView{Index: index, Label: item.Label}
}

// Window holds the rendered item views in display order. It only grows or
// shrinks at its ends.
type Window struct {
	views []*ItemView
}

// Len returns the number of rendered views.
func (w *Window) Len() int {
	return len(w.views)
}

// At returns the view at position i, or nil when i is out of range.
func (w *Window) At(i int) *ItemView {
	if i < 0 || i >= len(w.views) {
		return nil
	}
	return w.views[i]
}

// Views returns the rendered views in display order.
func (w *Window) Views() []*ItemView {
	dup := make([]*ItemView, len(w.views))
	copy(dup, w.views)
	return dup
}

func (w *Window) PushFront(v *ItemView) {
	w.views = append(w.views, nil)
	copy(w.views[1:], w.views)
	w.views[0] = v
}

func (w *Window) PushBack(v *ItemView) {
	w.views = append(w.views, v)
}

func (w *Window) PopFront() *ItemView {
	if len(w.views) == 0 {
		return nil
	}
	v := w.views[0]
	w.views[0] = nil
	w.views = w.views[1:]
	return v
}

func (w *Window) PopBack() *ItemView {
	n := len(w.views)
	if n == 0 {
		return nil
	}
	v := w.views[n-1]
	w.views[n-1] = nil
	w.views = w.views[:n-1]
	return v
}

// Clear drops every rendered view.
func (w *Window) Clear() {
	for i := range w.views {
		w.views[i] = nil
	}
	w.views = w.views[:0]
}
