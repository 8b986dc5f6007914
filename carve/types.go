package carve

import "github.com/katalvlaran/crystal/lattice"

// Predicate reports whether an atom at the given position is kept.
// Predicates must be pure: deterministic, no side effects.
type Predicate func(p lattice.Vec3) bool

// Axis selects a Cartesian axis for axis-aligned predicates.
type Axis int

const (
	// AxisX is the Cartesian x axis.
	AxisX Axis = iota
	// AxisY is the Cartesian y axis.
	AxisY
	// AxisZ is the Cartesian z axis; wires are conventionally carved along it.
	AxisZ
)

// planar returns the two coordinate indices spanning the plane
// orthogonal to the axis.
func (a Axis) planar() (u, v int, ok bool) {
	switch a {
	case AxisX:
		return 1, 2, true
	case AxisY:
		return 0, 2, true
	case AxisZ:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}
