// Package lattice defines the core crystal-model types: Vec3, Atom,
// UnitCell, and AtomSet, plus integer tiling of a unit cell into a
// finite structure.
//
// What:
//
//   - Vec3 is a plain 3-component Cartesian vector (Å) with value-type math.
//   - UnitCell is an immutable periodic cell: three lattice vectors and a
//     non-empty list of species-tagged atoms in Cartesian coordinates.
//   - AtomSet is a flat, finite atom list plus the overall bounding cell
//     vectors; produced by Replicate and consumed by the bond, carve and
//     view packages.
//   - (*UnitCell).Replicate tiles the cell by positive integer counts along
//     its own lattice vectors.
//
// Why:
//
//   - Crystal phases are described once as a unit cell and rendered as a
//     finite tiled structure; every downstream derivation (bond graph,
//     carving, view framing) reads the same immutable AtomSet.
//
// Complexity:
//
//   - Replicate: O(m·nx·ny·nz) time and memory (m = atoms per cell).
//   - All Vec3 operations and accessors: O(1), or O(n) for copying accessors.
//
// Errors:
//
//   - ErrNoAtoms: a UnitCell was constructed with an empty atom list.
//   - ErrDegenerateCell: the three lattice vectors span zero volume.
//   - ErrBadRepeat: a repeat count below 1 was passed to Replicate.
package lattice
