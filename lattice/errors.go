package lattice

import "errors"

var (
	// ErrNoAtoms indicates a UnitCell was constructed with an empty atom list.
	ErrNoAtoms = errors.New("lattice: unit cell must contain at least one atom")
	// ErrDegenerateCell indicates the three lattice vectors are linearly
	// dependent, i.e. the cell volume is zero.
	ErrDegenerateCell = errors.New("lattice: lattice vectors must span a non-zero volume")
	// ErrBadRepeat indicates a repeat count below 1 was passed to Replicate.
	ErrBadRepeat = errors.New("lattice: repeat counts must be positive")
)
