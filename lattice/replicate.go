package lattice

import "fmt"

// Replicate tiles the unit cell nx×ny×nz times along its own lattice
// vectors and returns the resulting AtomSet. For every replica index
// (i, j, k) with 0 ≤ i < nx, 0 ≤ j < ny, 0 ≤ k < nz, each cell atom is
// emitted at position + i·a + j·b + k·c, keeping its species tag.
//
// The output order is deterministic: replica-major (i outer, then j,
// then k), cell atoms innermost, so repeated calls with equal inputs
// yield identical atom lists and stable atom indices for bond building.
//
// The AtomSet's cell vectors are the unit-cell vectors scaled by their
// axis repeat counts; they describe the bounding parallelepiped for edge
// drawing and play no part in atom placement.
//
// Returns ErrBadRepeat if any count is below 1.
// Complexity: O(m·nx·ny·nz) time and memory.
func (c *UnitCell) Replicate(nx, ny, nz int) (*AtomSet, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("Replicate(%d,%d,%d): %w", nx, ny, nz, ErrBadRepeat)
	}

	atoms := make([]Atom, 0, len(c.atoms)*nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				offset := c.vectors[0].Scale(float64(i)).
					Add(c.vectors[1].Scale(float64(j))).
					Add(c.vectors[2].Scale(float64(k)))
				for _, a := range c.atoms {
					atoms = append(atoms, Atom{Species: a.Species, Position: a.Position.Add(offset)})
				}
			}
		}
	}

	cell := [3]Vec3{
		c.vectors[0].Scale(float64(nx)),
		c.vectors[1].Scale(float64(ny)),
		c.vectors[2].Scale(float64(nz)),
	}

	return &AtomSet{atoms: atoms, cell: cell}, nil
}
