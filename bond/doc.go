// Package bond derives a proximity graph over an AtomSet: two atoms are
// connected iff the Euclidean distance between them is strictly below a
// cutoff. The graph exists for rendering (drawing bond lines); it infers
// no bond order, type, or chemical validity.
//
// Build compares every distinct atom pair — O(n²) — which is a deliberate
// choice at this system's scale (tens to low hundreds of atoms), not a
// performance bug. A spatial index would have to preserve the exact same
// edge membership.
//
// Edges are stored once as index pairs (i, j) with i < j into the source
// AtomSet; Has answers symmetrically for either argument order.
//
// Errors:
//
//   - ErrBadCutoff: the cutoff distance is zero or negative.
//   - ErrEmptyAtomSet: the atom set is nil or holds no atoms.
package bond
