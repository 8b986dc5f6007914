package carve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crystal/carve"
	"github.com/katalvlaran/crystal/lattice"
	"github.com/katalvlaran/crystal/phase"
)

// lineSet builds an AtomSet of atoms along x at integer positions 0..n-1.
func lineSet(t *testing.T, n int) *lattice.AtomSet {
	t.Helper()
	atoms := make([]lattice.Atom, n)
	for i := range atoms {
		atoms[i] = lattice.Atom{Species: lattice.Ti, Position: lattice.Vec3{float64(i), 0, 0}}
	}

	return lattice.NewAtomSet(atoms, [3]lattice.Vec3{{float64(n), 0, 0}, {0, 1, 0}, {0, 0, 1}})
}

// TestFilter_Errors rejects nil inputs.
func TestFilter_Errors(t *testing.T) {
	all := carve.Predicate(func(lattice.Vec3) bool { return true })

	_, err := carve.Filter(nil, all)
	assert.ErrorIs(t, err, carve.ErrNilAtomSet)

	_, err = carve.Filter(lineSet(t, 3), nil)
	assert.ErrorIs(t, err, carve.ErrNilPredicate)
}

// TestFilter_KeepAll: an accept-everything predicate preserves count,
// order, and the bounding cell.
func TestFilter_KeepAll(t *testing.T) {
	in := lineSet(t, 5)
	out, err := carve.Filter(in, func(lattice.Vec3) bool { return true })
	require.NoError(t, err)

	assert.Equal(t, in.Len(), out.Len())
	assert.Equal(t, in.Atoms(), out.Atoms())
	assert.Equal(t, in.Cell(), out.Cell())
}

// TestFilter_StableSubset: survivors keep their relative order and the
// cell is untouched; an all-rejecting predicate yields an empty set.
func TestFilter_StableSubset(t *testing.T) {
	in := lineSet(t, 6)

	out, err := carve.Filter(in, func(p lattice.Vec3) bool {
		return int(p[0])%2 == 0 // keep x = 0, 2, 4
	})
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	for i, wantX := range []float64{0, 2, 4} {
		assert.Equal(t, wantX, out.At(i).Position[0], "survivor %d", i)
	}
	assert.Equal(t, in.Cell(), out.Cell())

	empty, err := carve.Filter(in, func(lattice.Vec3) bool { return false })
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
	assert.Equal(t, in.Cell(), empty.Cell())
}

// TestCylinder_Errors rejects a negative radius and an unknown axis.
func TestCylinder_Errors(t *testing.T) {
	_, err := carve.Cylinder(carve.AxisZ, lattice.Vec3{}, -0.1)
	assert.ErrorIs(t, err, carve.ErrNegativeRadius)

	_, err = carve.Cylinder(carve.Axis(7), lattice.Vec3{}, 1)
	assert.ErrorIs(t, err, carve.ErrBadAxis)
}

// TestCylinder_InclusiveBoundary: atoms exactly at the radius are kept
// (distance ≤ R), and radius 0 keeps only on-axis atoms.
func TestCylinder_InclusiveBoundary(t *testing.T) {
	atoms := []lattice.Atom{
		{Species: lattice.Ti, Position: lattice.Vec3{0, 0, 0}},   // on axis
		{Species: lattice.Ni, Position: lattice.Vec3{1, 0, 5}},   // exactly at R=1
		{Species: lattice.Ti, Position: lattice.Vec3{1, 1, 0}},   // sqrt(2) > 1
		{Species: lattice.Ni, Position: lattice.Vec3{0, 0.5, 2}}, // inside
	}
	set := lattice.NewAtomSet(atoms, [3]lattice.Vec3{{2, 0, 0}, {0, 2, 0}, {0, 0, 6}})

	keep, err := carve.Cylinder(carve.AxisZ, lattice.Vec3{0, 0, 0}, 1)
	require.NoError(t, err)
	out, err := carve.Filter(set, keep)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Len(), "boundary atom must be kept")

	onAxis, err := carve.Cylinder(carve.AxisZ, lattice.Vec3{0, 0, 0}, 0)
	require.NoError(t, err)
	out, err = carve.Filter(set, onAxis)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len(), "radius 0 keeps only atoms on the axis")
}

// TestCylinder_Axes verifies the planar projection per axis.
func TestCylinder_Axes(t *testing.T) {
	p := lattice.Vec3{3, 0, 0} // 3 Å off the y and z axes, on the x axis

	cases := []struct {
		axis carve.Axis
		keep bool
	}{
		{carve.AxisX, true},  // distance in (y,z) plane = 0
		{carve.AxisY, false}, // distance in (x,z) plane = 3
		{carve.AxisZ, false}, // distance in (x,y) plane = 3
	}
	for _, tc := range cases {
		pred, err := carve.Cylinder(tc.axis, lattice.Vec3{}, 1)
		require.NoError(t, err)
		assert.Equal(t, tc.keep, pred(p), "axis %v", tc.axis)
	}
}

// TestCylinder_WireInvariant carves a wire from a tiled B2 bulk and
// checks the invariant both ways: every kept atom within the radius,
// every removed atom outside it.
func TestCylinder_WireInvariant(t *testing.T) {
	cell, err := phase.B2(phase.DefaultB2Params())
	require.NoError(t, err)
	bulk, err := cell.Replicate(4, 4, 3)
	require.NoError(t, err)

	bounds := bulk.Cell()
	center := lattice.Vec3{bounds[0][0] / 2, bounds[1][1] / 2, 0}
	const radius = 4.5
	keep, err := carve.Cylinder(carve.AxisZ, center, radius)
	require.NoError(t, err)

	wire, err := carve.Filter(bulk, keep)
	require.NoError(t, err)
	require.Greater(t, wire.Len(), 0)
	require.Less(t, wire.Len(), bulk.Len())
	assert.Equal(t, bulk.Cell(), wire.Cell())

	perp := func(p lattice.Vec3) float64 {
		return math.Hypot(p[0]-center[0], p[1]-center[1])
	}
	keptPositions := make(map[lattice.Vec3]bool, wire.Len())
	for _, a := range wire.Atoms() {
		assert.LessOrEqual(t, perp(a.Position), radius)
		keptPositions[a.Position] = true
	}
	for _, a := range bulk.Atoms() {
		if !keptPositions[a.Position] {
			assert.Greater(t, perp(a.Position), radius)
		}
	}
}
