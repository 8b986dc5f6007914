// Package vizparams holds the shared visualization parameter set: one
// immutable value threaded through the construction of every compared
// structure, so that two phases are always built and styled with
// identical settings.
//
// This replaces a mutable module-level parameter table with an explicit
// value: callers obtain Default(), optionally overlay a YAML file via
// Load, call Validate once, and pass the value by copy to each
// construction path. Nothing can mutate a caller's copy from a distance.
//
// Errors:
//
//   - ErrBadRepetitions: a repeat count below 1.
//   - ErrBadBondDistance: a non-positive bond-distance cutoff.
//   - ErrBadStyle: a non-positive atom size or bond width, or a bond
//     alpha outside [0, 1].
package vizparams
