package grid2tin

import "math"

// availabilityMask is a DEM-shaped boolean grid: available[y][x] is true
// iff the cell (x, y) is still eligible to be picked as a refinement
// candidate. Cells within minimumGap of an existing mesh vertex or
// boundary edge are painted unavailable so no two mesh vertices ever end
// up closer than minimumGap pixels apart.
type availabilityMask struct {
	grid                   [][]bool
	minX, minY, maxX, maxY int
}

func newAvailabilityMask(width, height int) *availabilityMask {
	grid := make([][]bool, height)
	for y := range grid {
		row := make([]bool, width)
		for x := range row {
			row[x] = true
		}
		grid[y] = row
	}
	return &availabilityMask{
		grid: grid,
		minX: 0, minY: 0,
		maxX: width - 1, maxY: height - 1,
	}
}

func (m *availabilityMask) at(x, y int) bool {
	return m.grid[y][x]
}

// circlePoints enumerates every integer grid cell within radius of center,
// clipped to the mask's bounds, per triangulation.py's circle_points.
func (m *availabilityMask) circlePoints(cx, cy int, radius float64) [][2]int {
	var points [][2]int
	yStart := maxInt(int(math.Round(float64(cy)-radius)), m.minY)
	yEnd := minInt(int(math.Round(radius+1+float64(cy))), m.maxY+1)

	for y := yStart; y < yEnd; y++ {
		dy := float64(y - cy)
		xMax := math.Sqrt(math.Max(radius*radius-dy*dy, 0))
		xStart := maxInt(int(math.Round(float64(cx)-xMax)), m.minX)
		xEnd := minInt(int(math.Round(xMax+1+float64(cx))), m.maxX+1)
		for x := xStart; x < xEnd; x++ {
			points = append(points, [2]int{x, y})
		}
	}
	return points
}

// segmentPoints samples the line from s0 to s1 at step 1/ceil(||s1-s0||),
// rounding each sample to the nearest grid cell, per
// triangulation.py's segment_points.
func segmentPoints(s0, s1 *Vertex) [][2]int {
	a := s1.Sub(s0)
	d := int(math.Ceil(math.Hypot(a.X, a.Y)))
	if d == 0 {
		return [][2]int{{s0.X, s0.Y}}
	}
	step := 1.0 / float64(d)

	points := make([][2]int, 0, d+1)
	for i := 0; i <= d; i++ {
		vx := float64(s0.X) + float64(i)*step*a.X
		vy := float64(s0.Y) + float64(i)*step*a.Y
		points = append(points, [2]int{int(math.Round(vx)), int(math.Round(vy))})
	}
	return points
}

// markAvailability paints every cell within radius of v0 (or of every
// point along the v0-v1 segment, when v1 is given) with value. This is the
// one entry point used both to forbid new candidates near existing
// vertices/edges and to re-open the four forced corner cells.
func (m *availabilityMask) markAvailability(v0, v1 *Vertex, radius float64, value bool) {
	var points [][2]int
	if v1 != nil {
		points = segmentPoints(v0, v1)
	} else {
		points = [][2]int{{v0.X, v0.Y}}
	}

	for _, s := range points {
		for _, p := range m.circlePoints(s[0], s[1], radius) {
			m.grid[p[1]][p[0]] = value
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
