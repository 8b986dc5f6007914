package lattice

// Species tags an atom with its chemical identity. The set is open: any
// non-empty string is a valid tag. Consumers that need per-species render
// styling should group atoms once via AtomSet.CountBySpecies (or iterate
// Atoms) rather than re-filtering by string comparison at every use site.
type Species string

// Species tags for nitinol, the reference material of the phase package.
const (
	// Ti is titanium.
	Ti Species = "Ti"
	// Ni is nickel.
	Ni Species = "Ni"
)

// Atom is a species-tagged point in absolute Cartesian coordinates.
type Atom struct {
	// Species identifies the atom's chemical element.
	Species Species
	// Position is the absolute Cartesian position in Å.
	Position Vec3
}

// UnitCell is an immutable periodic cell: three lattice vectors (possibly
// non-orthogonal) and the atoms contained within one period, in Cartesian
// coordinates consistent with the vectors. Construct via NewUnitCell; the
// zero value is not usable.
type UnitCell struct {
	vectors [3]Vec3
	atoms   []Atom
}

// AtomSet is a finite, flat atom list plus the overall bounding cell
// vectors (each unit-cell vector scaled by its repeat count). It is
// produced by (*UnitCell).Replicate and reduced, never mutated, by
// carve.Filter. Construct via NewAtomSet; the zero value is not usable.
type AtomSet struct {
	atoms []Atom
	cell  [3]Vec3
}
