// Package view derives the rendering geometry of an AtomSet: an
// equal-aspect bounding cube around the atom cloud and the twelve edge
// segments of the bounding cell parallelepiped.
//
// The bounding cube is centered on the per-axis midpoints of the atom
// positions and extends by half the largest axis span in every direction.
// Rendering both a cubic and a monoclinic phase inside such cubes keeps
// their visual scale identical, so neither phase looks distorted next to
// the other.
//
// Errors:
//
//   - ErrEmptyAtomSet: the atom set is nil or holds no atoms (nothing to
//     frame; an over-aggressive region filter is reported, not rendered
//     as an empty picture).
package view
