package carve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crystal/lattice"
)

// Filter returns a new AtomSet holding exactly the atoms whose position
// satisfies keep, in their original order. The bounding cell vectors are
// carried over unchanged. The input set is never mutated.
//
// Returns ErrNilAtomSet or ErrNilPredicate on nil inputs.
// Complexity: O(n) time and memory.
func Filter(set *lattice.AtomSet, keep Predicate) (*lattice.AtomSet, error) {
	if set == nil {
		return nil, fmt.Errorf("Filter: %w", ErrNilAtomSet)
	}
	if keep == nil {
		return nil, fmt.Errorf("Filter: %w", ErrNilPredicate)
	}

	kept := make([]lattice.Atom, 0, set.Len())
	for _, a := range set.Atoms() {
		if keep(a.Position) {
			kept = append(kept, a)
		}
	}

	return lattice.NewAtomSet(kept, set.Cell()), nil
}

// Cylinder returns a predicate keeping positions whose perpendicular
// distance from the axis-parallel line through center is at most radius.
// Only the two coordinates orthogonal to the axis enter the distance;
// the cylinder is unbounded along the axis (the tiled set is already
// finite there).
//
// The boundary is inclusive (distance ≤ radius, plain floating-point
// comparison), so radius 0 keeps exactly the atoms on the axis line.
//
// Returns ErrNegativeRadius for radius < 0 and ErrBadAxis for an
// unknown axis.
func Cylinder(axis Axis, center lattice.Vec3, radius float64) (Predicate, error) {
	if radius < 0 {
		return nil, fmt.Errorf("Cylinder: radius=%v: %w", radius, ErrNegativeRadius)
	}
	u, v, ok := axis.planar()
	if !ok {
		return nil, fmt.Errorf("Cylinder: axis=%d: %w", axis, ErrBadAxis)
	}

	return func(p lattice.Vec3) bool {
		return math.Hypot(p[u]-center[u], p[v]-center[v]) <= radius
	}, nil
}
