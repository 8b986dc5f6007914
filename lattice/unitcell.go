package lattice

import "math"

// volumeEps is the minimum |det(a,b,c)| in Å³ below which a cell is
// considered degenerate (coplanar or collinear lattice vectors).
const volumeEps = 1e-9

// NewUnitCell constructs an immutable UnitCell from three lattice vectors
// and a non-empty atom list. The atom slice is deep-copied to guarantee
// immutability. Returns ErrNoAtoms for an empty atom list and
// ErrDegenerateCell when the vectors span (near-)zero volume.
// Complexity: O(len(atoms)) time and memory.
func NewUnitCell(vectors [3]Vec3, atoms []Atom) (*UnitCell, error) {
	if len(atoms) == 0 {
		return nil, ErrNoAtoms
	}
	if math.Abs(tripleProduct(vectors)) < volumeEps {
		return nil, ErrDegenerateCell
	}
	own := make([]Atom, len(atoms))
	copy(own, atoms)

	return &UnitCell{vectors: vectors, atoms: own}, nil
}

// tripleProduct returns a·(b×c), the signed cell volume.
func tripleProduct(v [3]Vec3) float64 {
	return v[0].Dot(v[1].Cross(v[2]))
}

// Vectors returns the three lattice vectors (a, b, c).
func (c *UnitCell) Vectors() [3]Vec3 {
	return c.vectors
}

// Atoms returns a copy of the cell's atom list in construction order.
func (c *UnitCell) Atoms() []Atom {
	out := make([]Atom, len(c.atoms))
	copy(out, c.atoms)

	return out
}

// NumAtoms returns the number of atoms in one period of the cell.
func (c *UnitCell) NumAtoms() int {
	return len(c.atoms)
}

// Volume returns the unsigned cell volume |a·(b×c)| in Å³.
func (c *UnitCell) Volume() float64 {
	return math.Abs(tripleProduct(c.vectors))
}
