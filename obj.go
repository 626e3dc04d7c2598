package grid2tin

import (
	"bufio"
	"fmt"
	"math"
	"os"
)

// SetAffine installs the georeferencing transform WriteObj applies to each
// vertex's (X, Y) before writing it. The triangulation never constructs a
// non-identity Affine itself; a caller that decoded a raster with a
// transform attached supplies it here.
func (t *Triangulation) SetAffine(a Affine) {
	t.affine = a
}

// WriteObj emits a Wavefront OBJ file: one "v x y z" line per vertex (with
// the affine transform applied to the (x, y) projection), one "vt u v"
// line per vertex normalized to the unit square over the mesh's
// transformed x/y extents, and one "f" line per live triangle, 1-based and
// wound in reverse to produce outward normals in a y-down raster.
func (t *Triangulation) WriteObj(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("grid2tin: cannot create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	defer w.Flush()

	vertices := t.Vertices()
	index := make(map[*Vertex]int, len(vertices))

	type xy struct{ x, y float64 }
	coords := make([]xy, len(vertices))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for i, v := range vertices {
		index[v] = i + 1
		px, py := t.affine.Apply(float64(v.X), float64(v.Y))
		coords[i] = xy{px, py}
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	for i, v := range vertices {
		if _, err := fmt.Fprintf(w, "v %.6f %.6f %.6f\n", coords[i].x, coords[i].y, v.Z); err != nil {
			return err
		}
	}
	for _, c := range coords {
		u := (c.x - minX) / rangeX
		vv := (c.y - minY) / rangeY
		if _, err := fmt.Fprintf(w, "vt %.6f %.6f\n", u, vv); err != nil {
			return err
		}
	}
	for _, tri := range t.Triangles() {
		a := index[tri.Vertices[0]]
		b := index[tri.Vertices[1]]
		c := index[tri.Vertices[2]]
		// Reversed winding for outward normals in a y-down raster.
		if _, err := fmt.Fprintf(w, "f %d/%d %d/%d %d/%d\n", c, c, b, b, a, a); err != nil {
			return err
		}
	}
	return nil
}
