package bond_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crystal/bond"
	"github.com/katalvlaran/crystal/lattice"
	"github.com/katalvlaran/crystal/phase"
)

func setOf(positions ...lattice.Vec3) *lattice.AtomSet {
	atoms := make([]lattice.Atom, len(positions))
	for i, p := range positions {
		atoms[i] = lattice.Atom{Species: lattice.Ti, Position: p}
	}

	return lattice.NewAtomSet(atoms, [3]lattice.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
}

// TestBuild_Errors rejects non-positive cutoffs and empty sets.
func TestBuild_Errors(t *testing.T) {
	set := setOf(lattice.Vec3{0, 0, 0})

	for _, cutoff := range []float64{0, -1.5} {
		_, err := bond.Build(set, cutoff)
		assert.ErrorIs(t, err, bond.ErrBadCutoff, "cutoff %v", cutoff)
	}

	_, err := bond.Build(nil, 1)
	assert.ErrorIs(t, err, bond.ErrEmptyAtomSet)

	empty := lattice.NewAtomSet(nil, [3]lattice.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	_, err = bond.Build(empty, 1)
	assert.ErrorIs(t, err, bond.ErrEmptyAtomSet)
}

// TestBuild_ThresholdBoundary: a pair exactly at the cutoff is NOT
// bonded; strictly inside it is.
func TestBuild_ThresholdBoundary(t *testing.T) {
	atCutoff := setOf(lattice.Vec3{0, 0, 0}, lattice.Vec3{1, 0, 0})
	g, err := bond.Build(atCutoff, 1)
	require.NoError(t, err)
	assert.Zero(t, g.Len(), "distance == cutoff must not bond")

	inside := setOf(lattice.Vec3{0, 0, 0}, lattice.Vec3{0.999, 0, 0})
	g, err = bond.Build(inside, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len(), "distance < cutoff must bond")
	assert.True(t, g.Has(0, 1))
}

// TestBuild_SymmetryAndShape: Has is symmetric, self-pairs never bond,
// and stored edges are unique (i, j) with i < j.
func TestBuild_SymmetryAndShape(t *testing.T) {
	set := setOf(
		lattice.Vec3{0, 0, 0},
		lattice.Vec3{0.5, 0, 0},
		lattice.Vec3{1.2, 0, 0},
		lattice.Vec3{5, 5, 5},
	)
	g, err := bond.Build(set, 1)
	require.NoError(t, err)

	for i := 0; i < set.Len(); i++ {
		assert.False(t, g.Has(i, i), "self-edge at %d", i)
		for j := 0; j < set.Len(); j++ {
			assert.Equal(t, g.Has(i, j), g.Has(j, i), "asymmetry at (%d,%d)", i, j)
		}
	}

	seen := make(map[[2]int]bool)
	for _, e := range g.Edges() {
		assert.Less(t, e[0], e[1], "edge %v not in i<j form", e)
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}
}

// TestBuild_B2Reference: the 2×2×2 tiled nitinol B2 structure under the
// reference 3.2 Å cutoff. Nearest Ti–Ni pairs sit at √3/2·a ≈ 2.611 Å
// (27 pairs), same-species neighbors at a = 3.015 Å (12 + 12 pairs);
// the next shell is beyond 4 Å. Total: 51 bonds.
func TestBuild_B2Reference(t *testing.T) {
	cell, err := phase.B2(phase.DefaultB2Params())
	require.NoError(t, err)
	set, err := cell.Replicate(2, 2, 2)
	require.NoError(t, err)

	g, err := bond.Build(set, 3.2)
	require.NoError(t, err)
	assert.Equal(t, 16, g.NumAtoms())
	assert.Equal(t, 51, g.Len())
}

// TestBuild_Deterministic: equal inputs give identical edge lists.
func TestBuild_Deterministic(t *testing.T) {
	cell, err := phase.B19Prime(phase.DefaultB19Params())
	require.NoError(t, err)
	set, err := cell.Replicate(2, 2, 2)
	require.NoError(t, err)

	first, err := bond.Build(set, 3.2)
	require.NoError(t, err)
	second, err := bond.Build(set, 3.2)
	require.NoError(t, err)
	assert.Equal(t, first.Edges(), second.Edges())
}
