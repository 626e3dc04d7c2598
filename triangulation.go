package grid2tin

// Triangulation is the owning context for one greedy-insertion TIN
// refinement: it holds the DEM, the quad-edge arena, the availability
// mask, the candidate heap, and the history DAG, and drives the
// insert-locate-flip-rescan loop described in spec.md §4.7. A
// Triangulation is not safe for concurrent mutation; InterpolatedMap and
// ErrorMap may be called concurrently by multiple readers once the
// triangulation is quiescent (no InsertPoint/InsertNext in flight), the
// same "safe for concurrent reads, not for concurrent writers" contract
// asset_manager.go documents for its mesh cache.
type Triangulation struct {
	dem        dem
	affine     Affine
	minimumGap float64

	minX, minY, maxX, maxY int

	arena     edgeArena
	available *availabilityMask
	heap      *indexedMaxHeap

	vertices     map[int]*Vertex
	nextVertexID int

	edges     map[int]edgeHandle
	nextEdgeID int

	triangleList []*Triangle
	history      *Triangle
	base         edgeHandle
}

// NewTriangulation builds the initial four-corner, two-triangle mesh over
// data (indexed data[y][x]) and scans both triangles for their first
// candidates. minimumGap is the minimum pixel separation enforced between
// mesh vertices (spec.md §6 default is 5; callers pass their own value).
func NewTriangulation(data [][]float64, minimumGap int) (*Triangulation, error) {
	d := dem(data)
	height := d.height()
	width := d.width()
	if height < 2 || width < 2 {
		return nil, invariantErr("DEM must be at least 2x2, got %dx%d", width, height)
	}

	t := &Triangulation{
		dem:          d,
		affine:       IdentityAffine(),
		minimumGap:   float64(minimumGap),
		minX:         0,
		minY:         0,
		maxX:         width - 1,
		maxY:         height - 1,
		available:    newAvailabilityMask(width, height),
		heap:         newIndexedMaxHeap(),
		vertices:     make(map[int]*Vertex),
		edges:        make(map[int]edgeHandle),
		nextVertexID: 4,
	}

	v0 := NewVertex(t.minX, t.minY, d[0][0])
	v1 := NewVertex(t.maxX, t.minY, d[0][width-1])
	v2 := NewVertex(t.maxX, t.maxY, d[height-1][width-1])
	v3 := NewVertex(t.minX, t.maxY, d[height-1][0])
	t.vertices[0], t.vertices[1], t.vertices[2], t.vertices[3] = v0, v1, v2, v3

	q0 := t.arena.makeEdge(v0, v1)
	q1 := t.arena.makeEdge(v2, v3)
	q2 := t.arena.makeEdge(v3, v0)
	q3 := t.arena.makeEdge(v1, v2)
	q4 := t.arena.makeEdge(v1, v3) // diagonal

	t.arena.splice(q0.sym(), q4)
	t.arena.splice(q4.sym(), q2)
	t.arena.splice(q2.sym(), q0)
	t.arena.splice(q0.sym(), q3)
	t.arena.splice(q3.sym(), q1)
	t.arena.splice(q1.sym(), q4.sym())

	t.addEdge(q0)
	t.addEdge(q1)
	t.addEdge(q2)
	t.addEdge(q3)

	boundary := []edgeHandle{q0, q1, q2, q3}
	for _, e := range boundary {
		t.available.markAvailability(t.arena.origin(e), t.arena.destination(e), t.minimumGap, false)
	}
	for _, e := range boundary {
		t.available.markAvailability(t.arena.origin(e), t.arena.destination(e), 0, true)
	}
	for _, v := range []*Vertex{v0, v1, v2, v3} {
		t.available.markAvailability(v, nil, t.minimumGap, false)
	}

	t.addEdge(q4)
	t.base = q0

	t.history = newHistoryRoot()
	t.history.Children = []*Triangle{
		newTriangle(&t.arena, q4),
		newTriangle(&t.arena, q4.sym()),
	}
	for _, tri := range t.history.Children {
		t.triangleList = append(t.triangleList, tri)
		scanTriangle(tri, t.dem, t.available, scanCandidate, nil)
		tri.ID = t.heap.Insert(tri.CandidateError, candidateEntry{Candidate: tri.Candidate, Triangle: tri})
	}

	return t, nil
}

// Vertices returns every vertex ever inserted, in insertion order.
func (t *Triangulation) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(t.vertices))
	for i := 0; i < t.nextVertexID; i++ {
		if v, ok := t.vertices[i]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Triangles returns every live triangle: one that still occupies a face of
// the mesh, per Triangle.live(). Liveness is anchor-based rather than
// id-based because a triangle can be a genuine live face between heap
// memberships (see InsertNext).
func (t *Triangulation) Triangles() []*Triangle {
	out := make([]*Triangle, 0, len(t.triangleList))
	for _, tri := range t.triangleList {
		if tri.live() {
			out = append(out, tri)
		}
	}
	return out
}

func (t *Triangulation) addEdge(e edgeHandle) {
	id := t.nextEdgeID
	t.edges[id] = e
	t.nextEdgeID++
}

func (t *Triangulation) deleteEdge(e edgeHandle) {
	t.arena.deleteEdge(e)
}

func (t *Triangulation) inRange(v *Vertex) bool {
	return v.X >= t.minX && v.X <= t.maxX && v.Y >= t.minY && v.Y <= t.maxY
}

// search performs point location for v by walking the history DAG from
// the root.
func (t *Triangulation) search(v *Vertex) edgeHandle {
	return locate(&t.arena, t.history, v)
}

func leftOf(a *edgeArena, p *Vertex, e edgeHandle) bool {
	return ccw(p, a.origin(e), a.destination(e))
}

func rightOf(a *edgeArena, p *Vertex, e edgeHandle) bool {
	return ccw(p, a.destination(e), a.origin(e))
}

// insertSite inserts v into the triangulation, maintaining the Delaunay
// criterion, per spec.md §4.7's ten numbered steps. hint, if not nilEdge,
// must name an edge of the triangle already known to contain v.
func (t *Triangulation) insertSite(v *Vertex, hint edgeHandle) (created, deleted []*Triangle, err error) {
	if !t.inRange(v) {
		return nil, nil, outOfRangeErr(v, t.dem.width(), t.dem.height())
	}

	a := &t.arena

	// Step 1: default z from the DEM.
	if v.Z == 0 {
		v.Z = t.dem[v.Y][v.X]
	}

	// Step 2: locate.
	e := hint
	if e.isNil() {
		e = t.search(v)
		if e.isNil() {
			return nil, nil, locateMissErr(v)
		}
	} else {
		if rightOf(a, v, e) || rightOf(a, v, a.lNext(e)) || rightOf(a, v, a.lPrev(e)) {
			return nil, nil, invariantErr("hint edge does not bound the triangle containing (%d, %d)", v.X, v.Y)
		}
	}

	// Step 3: classification.
	var parents []*Triangle
	boundaryEdge := nilEdge

	origin, destination := a.origin(e), a.destination(e)
	switch {
	case v.Equal(origin) || v.Equal(destination) || v.Equal(a.origin(a.lPrev(e))):
		return nil, nil, nil
	case onEdge(v, origin, destination):
		if !rightOf(a, a.destination(a.oPrev(e)), e) {
			parents = []*Triangle{a.triangleOf(e)}
			boundaryEdge = e
		} else {
			parents = []*Triangle{a.triangleOf(e), a.triangleOf(e.sym())}
			e = a.oPrev(e)
			t.deleteEdge(a.oNext(e))
		}
	default:
		parents = []*Triangle{a.triangleOf(e)}
	}

	// Step 4: assign v a new vertex id.
	t.vertices[t.nextVertexID] = v
	t.nextVertexID++

	// Step 5: spokes.
	spoke := a.makeEdge(a.origin(e), v)
	t.addEdge(spoke)
	a.splice(spoke, e)
	startingSpoke := spoke

	spoke = a.connect(e, spoke.sym())
	t.addEdge(spoke)

	e = a.oPrev(spoke)
	for a.lNext(e) != startingSpoke {
		spoke = a.connect(e, spoke.sym())
		t.addEdge(spoke)
		e = a.oPrev(spoke)
	}

	// Step 6: replace the mesh's base edge if we deleted it.
	if !boundaryEdge.isNil() {
		t.base = e
		t.deleteEdge(boundaryEdge)
	}

	// Step 7: instantiate triangles for spokes on the correct side.
	currentSpoke := startingSpoke
	for {
		currentSpoke = a.dNext(currentSpoke)
		if leftOf(a, a.destination(a.oNext(currentSpoke)), currentSpoke) {
			child := newTriangle(a, currentSpoke)
			created = append(created, child)
			for _, parent := range parents {
				parent.Children = append(parent.Children, child)
			}
		}
		if currentSpoke == startingSpoke {
			break
		}
	}
	for _, parent := range parents {
		parent.Anchor = nilEdge
	}
	deleted = append(deleted, parents...)

	// Step 8: flip cascade.
	for {
		apex := a.oPrev(e)
		if rightOf(a, a.destination(apex), e) && inCircle(v, a.origin(e), a.destination(apex), a.destination(e)) {
			flipParents := []*Triangle{a.triangleOf(e), a.triangleOf(e.sym())}
			a.swap(e)
			deleted = append(deleted, flipParents...)

			children := []*Triangle{newTriangle(a, e), newTriangle(a, e.sym())}
			created = append(created, children...)
			for _, parent := range flipParents {
				parent.Children = append(parent.Children, children...)
				parent.Anchor = nilEdge
			}
			e = a.oPrev(e)
		} else if a.oNext(e) == startingSpoke {
			break
		} else {
			e = a.lPrev(a.oNext(e))
		}
	}

	created = subtractTriangles(created, deleted)

	// Step 9: mark the ball around v unavailable.
	t.available.markAvailability(v, nil, t.minimumGap, false)

	return created, deleted, nil
}

func subtractTriangles(created, deleted []*Triangle) []*Triangle {
	dead := make(map[*Triangle]bool, len(deleted))
	for _, d := range deleted {
		dead[d] = true
	}
	out := make([]*Triangle, 0, len(created))
	seen := make(map[*Triangle]bool, len(created))
	for _, c := range created {
		if dead[c] || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// InsertPoint explicitly inserts v into the triangulation (e.g. to force a
// boundary site), reconciling the heap the same way InsertNext does.
// hint, if not nilEdge, names a known bounding edge to skip point
// location. A v.Z of exactly 0 is read as "unset" and replaced by the DEM
// height at (v.X, v.Y), so a site at height 0.0 cannot be forced this way.
func (t *Triangulation) InsertPoint(v *Vertex, hint edgeHandle) error {
	created, deleted, err := t.insertSite(v, hint)
	if err != nil {
		return err
	}
	t.reconcileHeap(created, deleted)
	return nil
}

func (t *Triangulation) reconcileHeap(created, deleted []*Triangle) {
	for _, tri := range deleted {
		if tri.ID != -1 {
			t.heap.Delete(tri.ID)
			tri.ID = -1
		}
	}
	for _, tri := range created {
		scanTriangle(tri, t.dem, t.available, scanCandidate, nil)
		tri.ID = t.heap.Insert(tri.CandidateError, candidateEntry{Candidate: tri.Candidate, Triangle: tri})
	}
	t.triangleList = append(t.triangleList, created...)
}

// InsertNext pops the triangle with the largest current candidate error,
// inserts its candidate, restores the Delaunay criterion, and rescans the
// affected triangles. Returns the popped error magnitude and the resulting
// total vertex count. Callers drive the refinement loop externally,
// stopping once vertexCount reaches a budget or error drops below a
// tolerance. When no live triangle has an available cell left, nothing is
// inserted and the returned magnitude is -math.MaxFloat64 with a nil error.
func (t *Triangulation) InsertNext() (errorMagnitude float64, vertexCount int, err error) {
	if t.heap.Len() == 0 {
		return 0, len(t.vertices), invariantErr("InsertNext called with an empty heap")
	}
	if t.heap.Max().Triangle.CandidateError == noCandidate {
		return noCandidate, len(t.vertices), nil
	}

	key, entry := t.heap.PopMax()
	popped := entry.Triangle
	popped.ID = -1

	created, deleted, insertErr := t.insertSite(entry.Candidate, nilEdge)
	if created == nil && deleted == nil {
		// insertSite was a no-op (the candidate coincided with an already
		// placed vertex, or a LocateMiss): popped was never superseded and
		// its Anchor is still a genuine live mesh face, so it must go back
		// into the heap instead of silently dropping out of Triangles().
		popped.ID = t.heap.Insert(popped.CandidateError, candidateEntry{Candidate: popped.Candidate, Triangle: popped})
		return key, len(t.vertices), insertErr
	}
	if insertErr != nil {
		return key, len(t.vertices), insertErr
	}

	t.reconcileHeap(created, deleted)
	return key, len(t.vertices), nil
}

// InterpolatedMap returns the DEM-shaped raster produced by evaluating
// each live triangle's plane equation over its footprint.
func (t *Triangulation) InterpolatedMap() [][]float64 {
	out := make(dem, t.dem.height())
	for y := range out {
		row := make([]float64, t.dem.width())
		copy(row, t.dem[y])
		out[y] = row
	}
	for _, tri := range t.Triangles() {
		scanTriangle(tri, t.dem, nil, scanInterpolate, out)
	}
	return out
}

// ErrorMap returns dem - InterpolatedMap() elementwise.
func (t *Triangulation) ErrorMap() [][]float64 {
	interpolated := t.InterpolatedMap()
	out := make(dem, t.dem.height())
	for y := range out {
		row := make([]float64, t.dem.width())
		for x := range row {
			row[x] = t.dem[y][x] - interpolated[y][x]
		}
		out[y] = row
	}
	return out
}
