// Package carve reduces an AtomSet to the subset satisfying a geometric
// predicate, e.g. to cut a cylindrical wire out of a tiled bulk lattice.
//
// What:
//
//   - Predicate is a pure position test.
//   - Filter applies a predicate to an AtomSet, keeping the original atom
//     order among survivors and leaving the bounding cell untouched.
//   - Cylinder builds the wire-carving predicate: perpendicular distance
//     to an axis-parallel line, inclusive of the boundary (distance ≤ R,
//     no epsilon beyond standard floating comparison).
//
// Filtering never mutates its input; it returns a new AtomSet. A filter
// may keep zero atoms — consumers such as bond.Build and view.NewFrame
// reject the empty set themselves.
//
// Complexity: Filter is O(n) in the atom count; predicates are O(1).
//
// Errors:
//
//   - ErrNilAtomSet: Filter received a nil set.
//   - ErrNilPredicate: Filter received a nil predicate.
//   - ErrNegativeRadius: Cylinder received a radius below 0.
//   - ErrBadAxis: Cylinder received an axis outside AxisX/AxisY/AxisZ.
package carve
