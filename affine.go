package grid2tin

// Affine is a 2D affine georeferencing transform: x' = A*x + B*y + C,
// y' = D*x + E*y + F. It is a pure boundary type — the core only ever
// calls Apply on one supplied by a caller when writing an OBJ; it never
// constructs a non-identity instance itself, mirroring the role
// affine.Affine plays at the edge of triangulation.py's write_obj.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the affine transform that leaves coordinates
// unchanged.
func IdentityAffine() Affine {
	return Affine{A: 1, E: 1}
}

// Apply maps (x, y) through the transform.
func (t Affine) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.B*y + t.C, t.D*x + t.E*y + t.F
}
