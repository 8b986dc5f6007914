package vizparams

import "errors"

var (
	// ErrBadRepetitions indicates a repeat count below 1.
	ErrBadRepetitions = errors.New("vizparams: repetitions must be positive on every axis")
	// ErrBadBondDistance indicates a non-positive bond-distance cutoff.
	ErrBadBondDistance = errors.New("vizparams: bond distance must be positive")
	// ErrBadStyle indicates an out-of-range rendering style value.
	ErrBadStyle = errors.New("vizparams: style values out of range")
)
