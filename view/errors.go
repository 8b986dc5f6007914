package view

import "errors"

// ErrEmptyAtomSet indicates a nil or empty atom set; there is no structure to frame.
var ErrEmptyAtomSet = errors.New("view: atom set must contain at least one atom")
