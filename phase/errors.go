package phase

import "errors"

var (
	// ErrBadLength indicates a zero or negative lattice length.
	ErrBadLength = errors.New("phase: lattice lengths must be positive")
	// ErrBadAngle indicates a monoclinic angle outside the open interval (0°, 180°).
	ErrBadAngle = errors.New("phase: monoclinic angle must lie in (0°, 180°)")
	// ErrBadSpecies indicates an empty species tag.
	ErrBadSpecies = errors.New("phase: species tags must be non-empty")
)
