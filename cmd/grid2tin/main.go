// Command grid2tin runs greedy TIN refinement over a synthetic or
// file-supplied elevation grid and writes the resulting mesh as an OBJ.
// It is a thin demonstration harness, not part of the library's core
// contract (spec places CLI/file-I/O harnesses at the system's boundary,
// not inside it) — grounded in the flag-driven EngineConfig + demo-mode
// switch the teacher's own main.go uses to pick a scene to run.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mirstar13/grid2tin"
)

const (
	demoGaussians = "gaussians"
	demoFile      = "file"
)

type engineConfig struct {
	demo         string
	rows, cols   int
	minimumGap   int
	vertexLimit  int
	errorLimit   float64
	inputPath    string
	outputPath   string
}

func main() {
	cfg := parseFlags()

	var data [][]float64
	var err error
	switch cfg.demo {
	case demoFile:
		data, err = readGrid(cfg.inputPath)
	default:
		data = gaussianBumpsGrid(cfg.rows, cfg.cols)
	}
	if err != nil {
		log.Fatalf("grid2tin: %v", err)
	}

	tri, err := grid2tin.NewTriangulation(data, cfg.minimumGap)
	if err != nil {
		log.Fatalf("grid2tin: %v", err)
	}

	errVal := math.Inf(1)
	vertexCount := 0
	for vertexCount < cfg.vertexLimit && errVal > cfg.errorLimit {
		errVal, vertexCount, err = tri.InsertNext()
		if err != nil {
			log.Fatalf("grid2tin: refinement step failed: %v", err)
		}
	}

	fmt.Printf("refined to %d vertices, error %.4f\n", vertexCount, errVal)

	if cfg.outputPath != "" {
		if err := tri.WriteObj(cfg.outputPath); err != nil {
			log.Fatalf("grid2tin: writing obj: %v", err)
		}
	}
}

func parseFlags() engineConfig {
	var cfg engineConfig
	flag.StringVar(&cfg.demo, "demo", demoGaussians, "demo grid to use: gaussians or file")
	flag.IntVar(&cfg.rows, "rows", 180, "synthetic grid rows")
	flag.IntVar(&cfg.cols, "cols", 240, "synthetic grid cols")
	flag.IntVar(&cfg.minimumGap, "min-gap", 5, "minimum pixel separation between vertices")
	flag.IntVar(&cfg.vertexLimit, "vertex-limit", 100, "stop once this many vertices are placed")
	flag.Float64Var(&cfg.errorLimit, "error-limit", 5.0, "stop once the worst error drops below this")
	flag.StringVar(&cfg.inputPath, "in", "", "path to a whitespace-delimited text grid (demo=file)")
	flag.StringVar(&cfg.outputPath, "out", "", "path to write the resulting mesh as an OBJ")
	flag.Parse()
	return cfg
}

// gaussianBumpsGrid builds the rows x cols synthetic DEM used by scenario
// S2 of the spec: 10 * (G2 - G1), two Gaussian bumps offset from center.
func gaussianBumpsGrid(rows, cols int) [][]float64 {
	grid := make([][]float64, rows)
	cx1, cy1 := float64(cols)*0.35, float64(rows)*0.5
	cx2, cy2 := float64(cols)*0.65, float64(rows)*0.5
	sigma := float64(cols) * 0.12
	for y := 0; y < rows; y++ {
		row := make([]float64, cols)
		for x := 0; x < cols; x++ {
			g1 := gaussian(float64(x), float64(y), cx1, cy1, sigma)
			g2 := gaussian(float64(x), float64(y), cx2, cy2, sigma)
			row[x] = 10 * (g2 - g1)
		}
		grid[y] = row
	}
	return grid
}

func gaussian(x, y, cx, cy, sigma float64) float64 {
	dx, dy := x-cx, y-cy
	return math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
}

// readGrid parses a whitespace-delimited text grid, one row per line.
func readGrid(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	var grid [][]float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing value %q: %w", f, err)
			}
			row[i] = v
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid, nil
}
