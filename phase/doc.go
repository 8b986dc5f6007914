// Package phase builds the unit cells of specific crystal phases from
// physical lattice parameters.
//
// What:
//
//   - B2 builds a CsCl-type (body-centered cubic, two-species) cell —
//     the austenite phase of shape-memory alloys such as nitinol.
//   - B19Prime builds a monoclinic four-atom cell — the martensite phase.
//   - DefaultB2Params / DefaultB19Params carry the published approximate
//     NiTi lattice constants, so both phases of one material are built
//     from a single consistent parameter source.
//
// All builders are pure: same parameters, same cell, no I/O, no globals.
//
// Accuracy note: the B19' atomic layout is a simplified approximation of
// two formula units, not the space-group-derived positions; see B19Prime.
//
// Errors:
//
//   - ErrBadLength: a lattice length is zero or negative.
//   - ErrBadAngle: the monoclinic angle β lies outside (0°, 180°).
//   - ErrBadSpecies: a species tag is empty.
package phase
