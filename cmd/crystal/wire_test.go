package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crystal/lattice"
	"github.com/katalvlaran/crystal/phase"
)

// TestWireRepeats derives repeat counts from physical wire dimensions.
func TestWireRepeats(t *testing.T) {
	reps, err := wireRepeats(30, 15, phase.NitinolB2A)
	require.NoError(t, err)
	assert.Equal(t, [3]int{4, 4, 9}, reps) // int(15/3.015)=4, int(30/3.015)=9

	_, err = wireRepeats(30, 2, phase.NitinolB2A) // thinner than one cell
	assert.Error(t, err)
	_, err = wireRepeats(1, 15, phase.NitinolB2A) // shorter than one cell
	assert.Error(t, err)
}

// TestSpeciesLines resolves the grouping once, sorted by tag.
func TestSpeciesLines(t *testing.T) {
	set := lattice.NewAtomSet([]lattice.Atom{
		{Species: lattice.Ni, Position: lattice.Vec3{0, 0, 0}},
		{Species: lattice.Ti, Position: lattice.Vec3{1, 0, 0}},
		{Species: lattice.Ni, Position: lattice.Vec3{0, 1, 0}},
	}, [3]lattice.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	lines := speciesLines(set)
	require.Len(t, lines, 2)
	assert.Equal(t, summaryLine{label: "Ni atoms", value: "2"}, lines[0])
	assert.Equal(t, summaryLine{label: "Ti atoms", value: "1"}, lines[1])
}
