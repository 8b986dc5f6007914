package lattice

// NewAtomSet constructs an AtomSet from an atom list and bounding cell
// vectors. The atom slice is deep-copied. An empty atom list is permitted
// here (a region filter may legitimately remove every atom); consumers
// that cannot operate on an empty set reject it themselves.
func NewAtomSet(atoms []Atom, cell [3]Vec3) *AtomSet {
	own := make([]Atom, len(atoms))
	copy(own, atoms)

	return &AtomSet{atoms: own, cell: cell}
}

// Len returns the number of atoms in the set.
func (s *AtomSet) Len() int {
	return len(s.atoms)
}

// At returns the atom at index i. Panics on out-of-range i, as slice
// indexing would.
func (s *AtomSet) At(i int) Atom {
	return s.atoms[i]
}

// Atoms returns a copy of the atom list in its deterministic order.
func (s *AtomSet) Atoms() []Atom {
	out := make([]Atom, len(s.atoms))
	copy(out, s.atoms)

	return out
}

// Cell returns the bounding cell vectors (unit-cell vectors scaled by
// their repeat counts). Region filtering leaves these unchanged.
func (s *AtomSet) Cell() [3]Vec3 {
	return s.cell
}

// CountBySpecies tallies atoms per species tag in a single pass.
func (s *AtomSet) CountBySpecies() map[Species]int {
	counts := make(map[Species]int)
	for _, a := range s.atoms {
		counts[a.Species]++
	}

	return counts
}
