package grid2tin

// edgeHandle addresses one of the four directed edges of a quad-edge
// bundle: bundle selects the allocation in the arena, rot selects which of
// the four rotations (0..3) within it. This is the "(bundleIndex,
// rotation) handle" arithmetic called for in spec.md §9 — rot, sym, and
// invRot become O(1) integer math with no pointer indirection.
type edgeHandle struct {
	bundle int32
	rot    uint8
}

// nilEdge is the zero-value-free sentinel for "no edge" (vertex with no
// incident edge yet, e.g. never reached).
var nilEdge = edgeHandle{bundle: -1}

func (h edgeHandle) isNil() bool { return h.bundle < 0 }

// rotEdge returns the next counterclockwise edge in the dual around the same
// quad-edge bundle.
func (h edgeHandle) rotEdge() edgeHandle {
	return edgeHandle{bundle: h.bundle, rot: (h.rot + 1) % 4}
}

// sym returns the reverse of h.
func (h edgeHandle) sym() edgeHandle {
	return edgeHandle{bundle: h.bundle, rot: (h.rot + 2) % 4}
}

// invRot returns the next clockwise edge in the dual.
func (h edgeHandle) invRot() edgeHandle {
	return edgeHandle{bundle: h.bundle, rot: (h.rot + 3) % 4}
}

// edgeRec is one of the four directed-edge slots in a quad-edge bundle.
type edgeRec struct {
	origin   *Vertex
	next     edgeHandle
	triangle *Triangle
}

type quadEdgeBundle struct {
	e [4]edgeRec
}

// edgeArena is the append-only backing store for every quad-edge bundle
// ever allocated by a Triangulation. Per spec.md §9's design note and
// DESIGN.md's grounding, this generalizes object_pool.go's slice-of-structs
// handle idiom from a reuse pool into a never-freed arena: the history DAG
// keeps dereferencing edges of triangles long after they are superseded, so
// nothing here is ever recycled.
type edgeArena struct {
	bundles []quadEdgeBundle
}

func (a *edgeArena) rec(h edgeHandle) *edgeRec {
	return &a.bundles[h.bundle].e[h.rot]
}

func (a *edgeArena) origin(h edgeHandle) *Vertex {
	return a.rec(h).origin
}

func (a *edgeArena) setOrigin(h edgeHandle, v *Vertex) {
	a.rec(h).origin = v
	if v != nil {
		v.Edge = h
	}
}

func (a *edgeArena) destination(h edgeHandle) *Vertex {
	return a.origin(h.sym())
}

func (a *edgeArena) setDestination(h edgeHandle, v *Vertex) {
	a.setOrigin(h.sym(), v)
}

func (a *edgeArena) oNext(h edgeHandle) edgeHandle {
	return a.rec(h).next
}

func (a *edgeArena) setONext(h, next edgeHandle) {
	a.rec(h).next = next
}

func (a *edgeArena) oPrev(h edgeHandle) edgeHandle {
	return a.oNext(h.rotEdge()).rotEdge()
}

func (a *edgeArena) dNext(h edgeHandle) edgeHandle {
	return a.oNext(h.sym()).sym()
}

func (a *edgeArena) dPrev(h edgeHandle) edgeHandle {
	return a.oNext(h.invRot()).invRot()
}

func (a *edgeArena) lNext(h edgeHandle) edgeHandle {
	return a.oNext(h.invRot()).rotEdge()
}

func (a *edgeArena) lPrev(h edgeHandle) edgeHandle {
	return a.oNext(h).sym()
}

func (a *edgeArena) rNext(h edgeHandle) edgeHandle {
	return a.oNext(h.rotEdge()).invRot()
}

func (a *edgeArena) rPrev(h edgeHandle) edgeHandle {
	return a.oNext(h.sym())
}

func (a *edgeArena) triangleOf(h edgeHandle) *Triangle {
	return a.rec(h).triangle
}

func (a *edgeArena) setTriangle(h edgeHandle, t *Triangle) {
	a.rec(h).triangle = t
}

// makeEdge allocates a fresh quad-edge bundle and returns its base edge, a
// free-floating edge from org to dst with next self-loops on the primal
// orbits (the origin bundle's rot-cycle mirrors quadedge.py's QuadEdge
// constructor).
func (a *edgeArena) makeEdge(org, dst *Vertex) edgeHandle {
	idx := int32(len(a.bundles))
	a.bundles = append(a.bundles, quadEdgeBundle{})
	base := edgeHandle{bundle: idx, rot: 0}
	e1 := edgeHandle{bundle: idx, rot: 1}
	e2 := edgeHandle{bundle: idx, rot: 2}
	e3 := edgeHandle{bundle: idx, rot: 3}

	a.setONext(base, base)
	a.setONext(e1, e3)
	a.setONext(e2, e2)
	a.setONext(e3, e1)

	a.setOrigin(base, org)
	a.setOrigin(e2, dst)
	return base
}

// splice is the Guibas-Stolfi primitive that swaps the oNext orbits of a
// and b. It is its own inverse on the orbit pair it touches, and the only
// topology-mutating primitive besides makeEdge.
func (a *edgeArena) splice(x, y edgeHandle) {
	alpha := a.oNext(x).rotEdge()
	beta := a.oNext(y).rotEdge()

	t1 := a.oNext(y)
	t2 := a.oNext(x)
	t3 := a.oNext(beta)
	t4 := a.oNext(alpha)

	a.setONext(x, t1)
	a.setONext(y, t2)
	a.setONext(alpha, t3)
	a.setONext(beta, t4)
}

// connect creates a new edge from destination(e1) to origin(e2), splicing
// it into lNext(e1) and e2, and returns the new directed edge.
func (a *edgeArena) connect(e1, e2 edgeHandle) edgeHandle {
	e := a.makeEdge(a.destination(e1), a.origin(e2))
	a.splice(e, a.lNext(e1))
	a.splice(e.sym(), e2)
	return e
}

// deleteEdge splices e out of both its origin orbits. The bundle's arena
// slot is not reclaimed: other edges' handles may still name it
// structurally valid but logically dead slots are simply never traversed
// into again once spliced out.
func (a *edgeArena) deleteEdge(h edgeHandle) {
	a.splice(h, a.oPrev(h))
	a.splice(h.sym(), a.oPrev(h.sym()))
}

// swap performs a Delaunay edge flip on e: preconditions are that e is an
// interior edge bordered by two triangles forming a convex quadrilateral.
// It re-splices e so that it connects the two previously-opposite vertices
// of the quadrilateral.
func (a *edgeArena) swap(e edgeHandle) {
	x := a.oPrev(e)
	y := a.oPrev(e.sym())
	a.splice(e, x)
	a.splice(e.sym(), y)
	a.splice(e, a.lNext(x))
	a.splice(e.sym(), a.lNext(y))
	a.setOrigin(e, a.destination(x))
	a.setDestination(e, a.destination(y))
}
