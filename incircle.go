package grid2tin

import "gonum.org/v1/gonum/mat"

// inCircleDet evaluates the classic lifted-paraboloid determinant for the
// incircle test of (v0, v1, v2) against p:
//
//	| v0.x  v0.y  v0.x^2+v0.y^2  1 |
//	| v1.x  v1.y  v1.x^2+v1.y^2  1 |
//	| v2.x  v2.y  v2.x^2+v2.y^2  1 |
//	| p.x   p.y   p.x^2+p.y^2    1 |
//
// Positive means p lies inside the circumcircle of (v0, v1, v2) when the
// triangle winds counterclockwise. Delegated to gonum's dense determinant
// rather than a hand-expanded cofactor formula.
func inCircleDet(v0, v1, v2, p *Vertex) float64 {
	row := func(v *Vertex) [4]float64 {
		x, y := float64(v.X), float64(v.Y)
		return [4]float64{x, y, x*x + y*y, 1}
	}
	r0, r1, r2, r3 := row(v0), row(v1), row(v2), row(p)
	m := mat.NewDense(4, 4, []float64{
		r0[0], r0[1], r0[2], r0[3],
		r1[0], r1[1], r1[2], r1[3],
		r2[0], r2[1], r2[2], r2[3],
		r3[0], r3[1], r3[2], r3[3],
	})
	return mat.Det(m)
}
