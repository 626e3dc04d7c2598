package grid2tin

import "math"

// Triangle is an ordered CCW triple of vertices plus an anchor directed
// edge whose left face is this triangle. Dead (superseded) triangles keep
// their Children for the history DAG but have no Anchor and ID == -1.
type Triangle struct {
	Vertices [3]*Vertex

	Anchor edgeHandle // nilEdge once superseded
	Area   float64    // signed, twice the triangle's area

	A, B, C float64 // plane equation: z = A*x + B*y + C

	Candidate      *Vertex
	CandidateError float64

	// ID doubles as the heap handle while the triangle is live in the
	// heap; -1 means deleted, or never inserted.
	ID int

	Children []*Triangle
}

// noCandidate is the sentinel placed in CandidateError before a scan finds
// any eligible cell, matching triangulation.py's float_min starting value.
const noCandidate = -math.MaxFloat64

// newTriangle builds a live triangle anchored at e: its vertices are
// (origin(e), destination(e), origin(lPrev(e))) in CCW order, per
// quadedge.py's Triangle constructor. It reshapes the mesh so each of its
// three boundary edges points back to it as their left face.
func newTriangle(a *edgeArena, e edgeHandle) *Triangle {
	t := &Triangle{
		Vertices:       [3]*Vertex{a.origin(e), a.destination(e), a.origin(a.lPrev(e))},
		Anchor:         e,
		ID:             -1,
		Candidate:      NewVertex(-1, -1, 0),
		CandidateError: noCandidate,
	}
	t.Area = triangleArea(t.Vertices[0], t.Vertices[1], t.Vertices[2])
	t.reshape(a)
	t.calculatePlaneEquation()
	return t
}

// newHistoryRoot builds the sentinel history-DAG root: it has no anchor
// and is never live (ID stays -1), only a Children list.
func newHistoryRoot() *Triangle {
	return &Triangle{Anchor: nilEdge, ID: -1, CandidateError: noCandidate}
}

// reshape records this triangle on each of its three bounding directed
// edges, so an edge can report which live triangle is its left face.
func (t *Triangle) reshape(a *edgeArena) {
	a.setTriangle(t.Anchor, t)
	a.setTriangle(a.lNext(t.Anchor), t)
	a.setTriangle(a.lPrev(t.Anchor), t)
}

// calculatePlaneEquation solves the plane z = A*x + B*y + C through the
// triangle's three vertices. A zero-area (degenerate) triangle would make
// this ill-defined; newTriangle is only ever called on edges whose three
// vertices are non-collinear in (x, y), a precondition the refinement
// driver is responsible for (see insertSite).
func (t *Triangle) calculatePlaneEquation() {
	a, b, c, ok := planeEquation(t.Vertices[0], t.Vertices[1], t.Vertices[2])
	if !ok {
		panic("grid2tin: degenerate triangle has zero projected area")
	}
	t.A, t.B, t.C = a, b, c
}

// Interpolate evaluates this triangle's plane equation at (x, y).
func (t *Triangle) Interpolate(x, y int) float64 {
	return t.A*float64(x) + t.B*float64(y) + t.C
}

// live reports whether the triangle currently occupies a face of the mesh.
func (t *Triangle) live() bool {
	return !t.Anchor.isNil()
}

// locate walks the history DAG rooted at root, descending into whichever
// child contains v, until it reaches a leaf (a live triangle) or finds no
// matching child — a LocateMiss, reported as a nil anchor.
func locate(a *edgeArena, root *Triangle, v *Vertex) edgeHandle {
	current := root
	for len(current.Children) > 0 {
		var next *Triangle
		for _, child := range current.Children {
			if inTriangle(v, child.Vertices[0], child.Vertices[1], child.Vertices[2]) {
				next = child
				break
			}
		}
		if next == nil {
			return nilEdge
		}
		current = next
	}
	return current.Anchor
}
