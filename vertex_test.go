package grid2tin

import "testing"

func TestTriangleAreaAndCCW(t *testing.T) {
	v0 := NewVertex(0, 0, 0)
	v1 := NewVertex(4, 0, 0)
	v2 := NewVertex(0, 4, 0)

	if area := triangleArea(v0, v1, v2); area <= 0 {
		t.Fatalf("expected positive area for CCW triangle, got %v", area)
	}
	if !ccw(v0, v1, v2) {
		t.Fatalf("expected (v0, v1, v2) to be CCW")
	}
	if ccw(v0, v2, v1) {
		t.Fatalf("expected (v0, v2, v1) to be CW")
	}
}

func TestInTriangleBoundaryCountsAsInside(t *testing.T) {
	v0 := NewVertex(0, 0, 0)
	v1 := NewVertex(10, 0, 0)
	v2 := NewVertex(0, 10, 0)

	cases := []struct {
		name string
		p    *Vertex
		want bool
	}{
		{"center", NewVertex(2, 2, 0), true},
		{"on edge v0-v1", NewVertex(5, 0, 0), true},
		{"vertex itself", NewVertex(0, 0, 0), true},
		{"outside", NewVertex(11, 11, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := inTriangle(c.p, v0, v1, v2); got != c.want {
				t.Errorf("inTriangle(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	// Unit circle through (1,0), (0,1), (-1,0) has radius 1, centered at origin.
	v0 := NewVertex(1, 0, 0)
	v1 := NewVertex(0, 1, 0)
	v2 := NewVertex(-1, 0, 0)

	inside := NewVertex(0, 0, 0)
	if !inCircle(inside, v0, v1, v2) {
		t.Errorf("expected origin to be inside the circumcircle")
	}

	outside := NewVertex(5, 5, 0)
	if inCircle(outside, v0, v1, v2) {
		t.Errorf("expected far point to be outside the circumcircle")
	}
}

func TestOnEdge(t *testing.T) {
	origin := NewVertex(0, 0, 0)
	dest := NewVertex(10, 0, 0)

	if !onEdge(NewVertex(5, 0, 0), origin, dest) {
		t.Errorf("expected midpoint to lie on edge")
	}
	if !onEdge(origin, origin, dest) {
		t.Errorf("expected endpoint to count as on edge")
	}
	if onEdge(NewVertex(5, 1, 0), origin, dest) {
		t.Errorf("expected off-line point to not be on edge")
	}
}

func TestEncroaches(t *testing.T) {
	origin := NewVertex(0, 0, 0)
	dest := NewVertex(10, 0, 0)

	if !encroaches(NewVertex(5, 1, 0), origin, dest) {
		t.Errorf("expected a point near the midpoint to encroach")
	}
	if encroaches(NewVertex(20, 20, 0), origin, dest) {
		t.Errorf("expected a far point to not encroach")
	}
	if encroaches(origin, origin, dest) {
		t.Errorf("expected an endpoint to never encroach")
	}
}

func TestPlaneEquation(t *testing.T) {
	v0 := NewVertex(0, 0, 0)
	v1 := NewVertex(10, 0, 10)
	v2 := NewVertex(0, 10, 5)

	a, b, c, ok := planeEquation(v0, v1, v2)
	if !ok {
		t.Fatal("expected non-degenerate plane equation")
	}
	for _, v := range []*Vertex{v0, v1, v2} {
		z := a*float64(v.X) + b*float64(v.Y) + c
		if diff := z - v.Z; diff > eps || diff < -eps {
			t.Errorf("plane equation mismatch at %v: got %v want %v", v, z, v.Z)
		}
	}
}

func TestPlaneEquationDegenerate(t *testing.T) {
	v0 := NewVertex(0, 0, 0)
	v1 := NewVertex(5, 0, 1)
	v2 := NewVertex(10, 0, 2) // collinear with v0, v1

	if _, _, _, ok := planeEquation(v0, v1, v2); ok {
		t.Errorf("expected degenerate collinear triangle to report ok=false")
	}
}
