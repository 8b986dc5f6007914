package carve

import "errors"

var (
	// ErrNilAtomSet indicates Filter received a nil AtomSet.
	ErrNilAtomSet = errors.New("carve: atom set must not be nil")
	// ErrNilPredicate indicates Filter received a nil predicate.
	ErrNilPredicate = errors.New("carve: predicate must not be nil")
	// ErrNegativeRadius indicates a cylinder radius below zero.
	ErrNegativeRadius = errors.New("carve: radius must be non-negative")
	// ErrBadAxis indicates an axis value outside AxisX, AxisY, AxisZ.
	ErrBadAxis = errors.New("carve: unknown axis")
)
