package grid2tin

import "testing"

func TestHeapInsertAndPopMaxOrder(t *testing.T) {
	h := newIndexedMaxHeap()
	keys := []float64{3.0, 1.0, 4.0, 1.5, 9.0, 2.6}
	for _, k := range keys {
		h.Insert(k, candidateEntry{})
	}

	want := []float64{9.0, 4.0, 3.0, 2.6, 1.5, 1.0}
	for _, w := range want {
		if h.Len() == 0 {
			t.Fatalf("heap emptied early, expected more entries")
		}
		got, _ := h.PopMax()
		if got != w {
			t.Errorf("PopMax() = %v, want %v", got, w)
		}
	}
	if h.Len() != 0 {
		t.Errorf("expected heap to be empty, got len %d", h.Len())
	}
}

func TestHeapDeleteByHandle(t *testing.T) {
	h := newIndexedMaxHeap()
	h1 := h.Insert(5.0, candidateEntry{})
	h2 := h.Insert(10.0, candidateEntry{})
	h3 := h.Insert(1.0, candidateEntry{})

	h.Delete(h2)
	if h.Len() != 2 {
		t.Fatalf("expected len 2 after delete, got %d", h.Len())
	}

	key, _ := h.PopMax()
	if key != 5.0 {
		t.Errorf("expected max remaining key 5.0 after deleting the true max, got %v", key)
	}

	key, _ = h.PopMax()
	if key != 1.0 {
		t.Errorf("expected 1.0, got %v", key)
	}
	_ = h1
	_ = h3
}

func TestHeapHandlesStayUniqueAcrossDeleteThenInsert(t *testing.T) {
	h := newIndexedMaxHeap()
	h1 := h.Insert(1.0, candidateEntry{})
	h2 := h.Insert(2.0, candidateEntry{})
	_ = h.Insert(3.0, candidateEntry{})

	// Simulate reconcileHeap: delete a couple of handles, then insert new
	// entries in the same batch, the way InsertNext retires stale
	// triangles and inserts their replacements together.
	h.Delete(h1)
	h.Delete(h2)
	h4 := h.Insert(4.0, candidateEntry{Triangle: &Triangle{ID: 4}})
	h5 := h.Insert(5.0, candidateEntry{Triangle: &Triangle{ID: 5}})

	if h4 == h5 {
		t.Fatalf("expected distinct handles, got %d and %d", h4, h5)
	}
	if h.elements[h4].Triangle.ID != 4 {
		t.Errorf("handle %d resolved to wrong element: %+v", h4, h.elements[h4])
	}
	if h.elements[h5].Triangle.ID != 5 {
		t.Errorf("handle %d resolved to wrong element: %+v", h5, h.elements[h5])
	}

	key, _ := h.PopMax()
	if key != 5.0 {
		t.Errorf("expected max 5.0, got %v", key)
	}
}

func TestHeapCoherenceAfterMixedOps(t *testing.T) {
	h := newIndexedMaxHeap()
	handles := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		handles = append(handles, h.Insert(float64(i), candidateEntry{}))
	}
	// Delete every third handle.
	for i := 0; i < len(handles); i += 3 {
		h.Delete(handles[i])
	}

	last := -1.0
	for h.Len() > 0 {
		key, _ := h.PopMax()
		if last != -1.0 && key > last {
			t.Fatalf("heap returned increasing key after %v: %v", last, key)
		}
		last = key
	}
}
