package phase

import (
	"fmt"

	"github.com/katalvlaran/crystal/lattice"
)

// B2 builds a B2 (CsCl-type) body-centered cubic unit cell: orthogonal
// lattice vectors of length p.A along x, y, z, the Corner species at
// fractional (0,0,0) and the Center species at fractional (½,½,½),
// both converted to Cartesian coordinates.
//
// Returns ErrBadLength for p.A ≤ 0 and ErrBadSpecies for empty tags.
// Complexity: O(1).
func B2(p B2Params) (*lattice.UnitCell, error) {
	if p.A <= 0 {
		return nil, fmt.Errorf("B2: a=%v: %w", p.A, ErrBadLength)
	}
	if p.Corner == "" || p.Center == "" {
		return nil, fmt.Errorf("B2: %w", ErrBadSpecies)
	}

	vectors := [3]lattice.Vec3{
		{p.A, 0, 0},
		{0, p.A, 0},
		{0, 0, p.A},
	}
	atoms := []lattice.Atom{
		{Species: p.Corner, Position: lattice.Vec3{0, 0, 0}},
		{Species: p.Center, Position: lattice.Vec3{p.A / 2, p.A / 2, p.A / 2}},
	}

	return lattice.NewUnitCell(vectors, atoms)
}
