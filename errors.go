package grid2tin

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per taxonomy kind in spec.md §7. Callers branch on
// these with errors.Is; call sites wrap them with %w plus context, per
// lvlath/builder/errors.go's sentinel convention.

// ErrOutOfRange indicates a caller-provided vertex coordinate lies outside
// the DEM extent. Surfaced immediately; the triangulation is left
// unchanged.
var ErrOutOfRange = errors.New("grid2tin: vertex out of range")

// ErrInvariantViolation indicates a predicate that should hold (a
// hint-edge's triangle actually containing the point, a plane equation's
// denominator being non-zero) failed. Indicates a bug or pathologically
// degenerate input.
var ErrInvariantViolation = errors.New("grid2tin: invariant violation")

// ErrLocateMiss indicates point location found no leaf triangle for a
// query vertex. Non-fatal: the driver treats the insertion as a no-op.
var ErrLocateMiss = errors.New("grid2tin: point location missed")

func outOfRangeErr(v *Vertex, width, height int) error {
	return fmt.Errorf("%w: (%d, %d) outside [0, %d) x [0, %d)", ErrOutOfRange, v.X, v.Y, width, height)
}

func invariantErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

func locateMissErr(v *Vertex) error {
	return fmt.Errorf("%w: (%d, %d)", ErrLocateMiss, v.X, v.Y)
}
