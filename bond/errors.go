package bond

import "errors"

var (
	// ErrBadCutoff indicates a zero or negative bond-distance cutoff.
	ErrBadCutoff = errors.New("bond: cutoff distance must be positive")
	// ErrEmptyAtomSet indicates a nil or empty atom set; there is nothing to bond.
	ErrEmptyAtomSet = errors.New("bond: atom set must contain at least one atom")
)
