package grid2tin

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"testing"
)

func TestWriteObjProducesConsistentMesh(t *testing.T) {
	data := flatGrid(6, 6, func(x, y int) float64 { return float64(x + y) })
	tri, err := NewTriangulation(data, 0)
	if err != nil {
		t.Fatalf("NewTriangulation: %v", err)
	}

	path := t.TempDir() + "/mesh.obj"
	if err := tri.WriteObj(path); err != nil {
		t.Fatalf("WriteObj: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written obj: %v", err)
	}
	defer file.Close()

	var vCount, vtCount, fCount int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			vCount++
			if len(fields) != 4 {
				t.Fatalf("malformed v line: %q", scanner.Text())
			}
		case "vt":
			vtCount++
			if len(fields) != 3 {
				t.Fatalf("malformed vt line: %q", scanner.Text())
			}
		case "f":
			fCount++
			for _, tok := range fields[1:] {
				parts := strings.Split(tok, "/")
				if len(parts) != 2 {
					t.Fatalf("malformed f token: %q", tok)
				}
				for _, p := range parts {
					idx, err := strconv.Atoi(p)
					if err != nil {
						t.Fatalf("non-numeric index %q: %v", p, err)
					}
					if idx < 1 || idx > vCount {
						t.Fatalf("face index %d out of 1-based vertex range [1,%d]", idx, vCount)
					}
				}
			}
		}
	}

	wantV := len(tri.Vertices())
	wantF := len(tri.Triangles())
	if vCount != wantV {
		t.Errorf("wrote %d v lines, want %d", vCount, wantV)
	}
	if vtCount != wantV {
		t.Errorf("wrote %d vt lines, want %d", vtCount, wantV)
	}
	if fCount != wantF {
		t.Errorf("wrote %d f lines, want %d", fCount, wantF)
	}
}

func TestWriteObjAppliesAffine(t *testing.T) {
	data := flatGrid(4, 4, func(x, y int) float64 { return 0 })
	tri, err := NewTriangulation(data, 0)
	if err != nil {
		t.Fatalf("NewTriangulation: %v", err)
	}
	tri.SetAffine(Affine{A: 2, B: 0, C: 100, D: 0, E: 2, F: 200})

	path := t.TempDir() + "/affine.obj"
	if err := tri.WriteObj(path); err != nil {
		t.Fatalf("WriteObj: %v", err)
	}

	data2, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading obj: %v", err)
	}

	first := ""
	for _, line := range strings.Split(string(data2), "\n") {
		if strings.HasPrefix(line, "v ") {
			first = line
			break
		}
	}
	if first == "" {
		t.Fatal("no v line found")
	}
	fields := strings.Fields(first)
	x, _ := strconv.ParseFloat(fields[1], 64)
	y, _ := strconv.ParseFloat(fields[2], 64)
	wantX, wantY := tri.affine.Apply(0, 0)
	if x != wantX || y != wantY {
		t.Errorf("first vertex = (%v, %v), want affine-transformed (%v, %v)", x, y, wantX, wantY)
	}
}
