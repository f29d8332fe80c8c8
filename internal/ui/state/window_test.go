package state

import "testing"

func TestWindowDequeOperations(t *testing.T) {
	var w Window
	if w.PopFront() != nil || w.PopBack() != nil {
		t.Fatalf("expected nil pops on an empty window")
	}
	w.PushBack(&ItemView{Index: 1})
	w.PushBack(&ItemView{Index: 2})
	w.PushFront(&ItemView{Index: 0})
	if w.Len() != 3 {
		t.Fatalf("expected 3 views, got %d", w.Len())
	}
	for i := 0; i < 3; i++ {
		if w.At(i).Index != i {
			t.Fatalf("expected view %d at row %d, got %d", i, i, w.At(i).Index)
		}
	}
	if w.At(3) != nil || w.At(-1) != nil {
		t.Fatalf("expected nil outside the window")
	}
	if v := w.PopFront(); v.Index != 0 {
		t.Fatalf("expected to pop view 0, got %d", v.Index)
	}
	if v := w.PopBack(); v.Index != 2 {
		t.Fatalf("expected to pop view 2, got %d", v.Index)
	}
	w.Clear()
	if w.Len() != 0 {
		t.Fatalf("expected empty window after clear")
	}
}
