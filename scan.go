package grid2tin

import "math"

// scanMode selects what scanTriangle does with each rasterized cell,
// mirroring the mode-flagged scanline core rasterizer_triangle.go shares
// across wireframe/filled/z-buffered triangle draws.
type scanMode int

const (
	// scanCandidate records the cell with the largest |dem - planeFit|
	// into the triangle's Candidate/CandidateError fields.
	scanCandidate scanMode = iota
	// scanInterpolate writes the plane-fit height into an output grid.
	scanInterpolate
	// scanEnumerate collects every scanned cell without evaluating the
	// plane equation, for external consumption.
	scanEnumerate
)

// dem is the read-only elevation surface the driver triangulates, indexed
// dem[y][x].
type dem [][]float64

func (d dem) height() int { return len(d) }
func (d dem) width() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0])
}

// scanTriangle rasterizes every integer grid cell inside t's projection,
// boundary cells included (both span ends and the last row are scanned),
// using a top-to-bottom scanline with two linearly interpolated
// x-spans, per triangulation.py's scan_triangle. Ties in the per-triangle
// argmax break toward the lowest (y, x), which the ascending scan order
// combined with a strict ">" comparison gives for free.
func scanTriangle(t *Triangle, d dem, available *availabilityMask, mode scanMode, out dem) [][2]int {
	v0, v1, v2 := t.Vertices[0], t.Vertices[1], t.Vertices[2]

	// sort ascending by Y
	if v0.Y > v1.Y {
		v0, v1 = v1, v0
	}
	if v0.Y > v2.Y {
		v0, v2 = v2, v0
	}
	if v1.Y > v2.Y {
		v1, v2 = v2, v1
	}

	var points [][2]int

	var dx0 float64
	if v1.Y != v0.Y {
		dx0 = float64(v1.X-v0.X) / float64(v1.Y-v0.Y)
	}
	dx1 := float64(v2.X-v0.X) / float64(v2.Y-v0.Y)

	xa, xb := float64(v0.X), float64(v0.X)
	for y := v0.Y; y < v1.Y; y++ {
		scanLine(t, d, available, mode, out, y, xa, xb, &points)
		xa += dx0
		xb += dx1
	}

	if v2.Y != v1.Y {
		dx0 = float64(v2.X-v1.X) / float64(v2.Y-v1.Y)
	} else {
		dx0 = 0
	}
	xa = float64(v1.X)
	for y := v1.Y; y <= v2.Y; y++ {
		scanLine(t, d, available, mode, out, y, xa, xb, &points)
		xa += dx0
		xb += dx1
	}

	return points
}

// scanLine processes one horizontal span [xa, xb] (in either order) at row
// y, clipped to the DEM's extent before any indexing happens.
func scanLine(t *Triangle, d dem, available *availabilityMask, mode scanMode, out dem, y int, xa, xb float64, points *[][2]int) {
	if y < 0 || y >= d.height() {
		return
	}
	minX, maxX := 0, d.width()-1

	xLeft, xRight := xa, xb
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	x0 := clampInt(int(math.Round(xLeft)), minX, maxX)
	x1 := clampInt(int(math.Round(xRight)), minX, maxX)

	for x := x0; x <= x1; x++ {
		switch mode {
		case scanCandidate:
			if available != nil && !available.at(x, y) {
				continue
			}
			z := t.Interpolate(x, y)
			errAbs := math.Abs(d[y][x] - z)
			if errAbs > t.CandidateError {
				t.CandidateError = errAbs
				t.Candidate = NewVertex(x, y, 0)
			}
		case scanInterpolate:
			out[y][x] = t.Interpolate(x, y)
		case scanEnumerate:
			*points = append(*points, [2]int{x, y})
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
