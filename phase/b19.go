package phase

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crystal/lattice"
)

// B19Prime builds a B19'-type monoclinic unit cell. The lattice vectors
// follow the standard monoclinic convention with the unique angle β
// between the a and c axes:
//
//	a-vec = (a, 0, 0)
//	b-vec = (0, b, 0)
//	c-vec = (c·cos β, 0, c·sin β)
//
// The four atoms are placed at a fixed approximate layout representing
// two formula units — (0,0,0), (a/2,b/2,c/2), (a/2,0,c/2), (0,b/2,0)
// with alternating First/Second species. These are in-cell Cartesian
// offsets, an intentional simplification of the true space-group-derived
// positions (which would also tilt with the c vector); the layout is kept
// as-is because it is the documented modeling choice, not crystallographic
// truth.
//
// Returns ErrBadLength if any of a, b, c is ≤ 0, ErrBadAngle if β lies
// outside (0°, 180°), and ErrBadSpecies for empty tags.
// Complexity: O(1).
func B19Prime(p B19Params) (*lattice.UnitCell, error) {
	if p.A <= 0 || p.B <= 0 || p.C <= 0 {
		return nil, fmt.Errorf("B19Prime: a=%v b=%v c=%v: %w", p.A, p.B, p.C, ErrBadLength)
	}
	if p.Beta <= 0 || p.Beta >= 180 {
		return nil, fmt.Errorf("B19Prime: beta=%v: %w", p.Beta, ErrBadAngle)
	}
	if p.First == "" || p.Second == "" {
		return nil, fmt.Errorf("B19Prime: %w", ErrBadSpecies)
	}

	beta := p.Beta * math.Pi / 180
	vectors := [3]lattice.Vec3{
		{p.A, 0, 0},
		{0, p.B, 0},
		{p.C * math.Cos(beta), 0, p.C * math.Sin(beta)},
	}
	atoms := []lattice.Atom{
		{Species: p.First, Position: lattice.Vec3{0, 0, 0}},
		{Species: p.Second, Position: lattice.Vec3{p.A / 2, p.B / 2, p.C / 2}},
		{Species: p.First, Position: lattice.Vec3{p.A / 2, 0, p.C / 2}},
		{Species: p.Second, Position: lattice.Vec3{0, p.B / 2, 0}},
	}

	return lattice.NewUnitCell(vectors, atoms)
}
