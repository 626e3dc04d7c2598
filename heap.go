package grid2tin

// candidateEntry is the payload stored in the heap for one live triangle:
// its current worst-error grid cell and the triangle itself.
type candidateEntry struct {
	Candidate *Vertex
	Triangle  *Triangle
}

// indexedMaxHeap is a 1-indexed binary max-heap over (priority float64,
// payload candidateEntry) with stable external handles, ported from
// original_source/grid2tin/heap.py's IndexMaxPQ (itself after Sedgewick &
// Wayne's IndexMaxPQ.java) and expressed with the "track my own position"
// idiom mesh_simplification.go's EdgeHeap uses for O(log n) delete/fix.
//
// Index 0 of every backing slice is unused so slot arithmetic (k/2, 2*k,
// 2*k+1) stays 1-based throughout.
type indexedMaxHeap struct {
	pq       []int             // pq[i] = handle at heap position i
	qp       []int             // qp[handle] = current heap position, -1 if removed
	keys     []float64         // keys[handle] = priority
	elements []candidateEntry  // elements[handle] = payload
	n        int               // number of entries currently in the heap
}

func newIndexedMaxHeap() *indexedMaxHeap {
	return &indexedMaxHeap{
		pq:       []int{-1},
		qp:       []int{-1},
		keys:     []float64{0},
		elements: []candidateEntry{{}},
	}
}

// Insert allocates a new handle for (key, element), appends it to the
// heap, and sifts it up. Returns the handle.
func (h *indexedMaxHeap) Insert(key float64, element candidateEntry) int {
	h.n++
	handle := len(h.qp) // qp/keys/elements only ever grow, unlike pq
	h.pq = append(h.pq, handle)
	h.qp = append(h.qp, h.n)
	h.keys = append(h.keys, key)
	h.elements = append(h.elements, element)

	h.swim(h.n)
	return handle
}

// Max peeks the payload at the root without removing it.
func (h *indexedMaxHeap) Max() candidateEntry {
	return h.elements[h.pq[1]]
}

// PopMax removes and returns the (key, payload) pair at the root.
func (h *indexedMaxHeap) PopMax() (float64, candidateEntry) {
	handle := h.pq[1]
	key, element := h.keys[handle], h.elements[handle]
	h.exchange(1, h.n)
	h.pq = h.pq[:h.n]
	h.n--
	h.sink(1)
	h.qp[handle] = -1
	return key, element
}

// Delete removes the entry with the given handle from the heap, wherever
// it currently sits.
func (h *indexedMaxHeap) Delete(handle int) {
	index := h.qp[handle]
	h.exchange(index, h.n)
	h.pq = h.pq[:h.n]
	h.n--
	if index <= h.n {
		h.swim(index)
		h.sink(index)
	}
	h.qp[handle] = -1
}

// Len reports the number of entries currently in the heap.
func (h *indexedMaxHeap) Len() int { return h.n }

func (h *indexedMaxHeap) less(i, j int) bool {
	return h.keys[h.pq[i]] < h.keys[h.pq[j]]
}

func (h *indexedMaxHeap) exchange(i, j int) {
	h.pq[i], h.pq[j] = h.pq[j], h.pq[i]
	h.qp[h.pq[i]] = i
	h.qp[h.pq[j]] = j
}

func (h *indexedMaxHeap) swim(k int) {
	for k > 1 && h.less(k/2, k) {
		h.exchange(k, k/2)
		k /= 2
	}
}

func (h *indexedMaxHeap) sink(k int) {
	for 2*k <= h.n {
		j := 2 * k
		if j < h.n && h.less(j, j+1) {
			j++
		}
		if !h.less(k, j) {
			break
		}
		h.exchange(k, j)
		k = j
	}
}
