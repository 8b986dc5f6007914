package phase

import "github.com/katalvlaran/crystal/lattice"

// Published approximate lattice constants for NiTi (nitinol).
const (
	// NitinolB2A is the B2 austenite lattice parameter in Å.
	NitinolB2A = 3.015
	// NitinolB19A, NitinolB19B, NitinolB19C are the B19' martensite
	// lattice lengths in Å.
	NitinolB19A = 2.89
	NitinolB19B = 4.12
	NitinolB19C = 4.62
	// NitinolB19Beta is the B19' monoclinic angle in degrees.
	NitinolB19Beta = 96.8
)

// B2Params parameterizes a B2 (CsCl-type) cubic cell.
type B2Params struct {
	// A is the cubic lattice parameter in Å. Must be positive.
	A float64
	// Corner is the species at fractional (0,0,0).
	Corner lattice.Species
	// Center is the species at the body center, fractional (½,½,½).
	Center lattice.Species
}

// B19Params parameterizes a B19'-type monoclinic cell.
type B19Params struct {
	// A, B, C are the lattice lengths in Å. All must be positive.
	A, B, C float64
	// Beta is the monoclinic angle between the a and c axes, in degrees,
	// in the open interval (0°, 180°).
	Beta float64
	// First and Second are the two alternating species of the four-atom
	// layout (First, Second, First, Second).
	First, Second lattice.Species
}

// DefaultB2Params returns the nitinol B2 austenite parameters:
// a = 3.015 Å, Ti at the corner, Ni at the body center.
func DefaultB2Params() B2Params {
	return B2Params{
		A:      NitinolB2A,
		Corner: lattice.Ti,
		Center: lattice.Ni,
	}
}

// DefaultB19Params returns the nitinol B19' martensite parameters:
// a = 2.89 Å, b = 4.12 Å, c = 4.62 Å, β = 96.8°, Ti/Ni alternating.
func DefaultB19Params() B19Params {
	return B19Params{
		A:      NitinolB19A,
		B:      NitinolB19B,
		C:      NitinolB19C,
		Beta:   NitinolB19Beta,
		First:  lattice.Ti,
		Second: lattice.Ni,
	}
}
