package view

import (
	"fmt"

	"github.com/katalvlaran/crystal/lattice"
)

// NumCellEdges is the edge count of a parallelepiped.
const NumCellEdges = 12

// Segment is a line segment between two Cartesian points.
type Segment [2]lattice.Vec3

// Frame is the derived rendering geometry of one AtomSet. It is
// recomputed by NewFrame whenever the AtomSet changes.
type Frame struct {
	// Center is the midpoint of the atom cloud's per-axis min/max.
	Center lattice.Vec3
	// HalfExtent is half the largest per-axis span. The cube
	// Center ± HalfExtent encloses every atom on every axis and is
	// tight on the axis with the largest span.
	HalfExtent float64
	// CellEdges are the 12 edges of the parallelepiped spanned by the
	// AtomSet's cell vectors from the origin: 3 edges leaving the
	// origin, 6 connecting adjacent faces, 3 meeting at the far corner.
	CellEdges [NumCellEdges]Segment
}

// NewFrame computes the Frame of set. Returns ErrEmptyAtomSet for a nil
// or empty set. Complexity: O(n) time, O(1) extra memory.
func NewFrame(set *lattice.AtomSet) (*Frame, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("NewFrame: %w", ErrEmptyAtomSet)
	}

	lo := set.At(0).Position
	hi := lo
	for i := 1; i < set.Len(); i++ {
		p := set.At(i).Position
		for ax := 0; ax < 3; ax++ {
			if p[ax] < lo[ax] {
				lo[ax] = p[ax]
			}
			if p[ax] > hi[ax] {
				hi[ax] = p[ax]
			}
		}
	}

	var center lattice.Vec3
	halfExtent := 0.0
	for ax := 0; ax < 3; ax++ {
		center[ax] = (lo[ax] + hi[ax]) / 2
		if span := hi[ax] - lo[ax]; span/2 > halfExtent {
			halfExtent = span / 2
		}
	}

	return &Frame{
		Center:     center,
		HalfExtent: halfExtent,
		CellEdges:  cellEdges(set.Cell()),
	}, nil
}

// cellEdges enumerates the 12 edges of the parallelepiped spanned by
// a, b, c from the origin, without duplicates or omissions.
func cellEdges(cell [3]lattice.Vec3) [NumCellEdges]Segment {
	var origin lattice.Vec3
	a, b, c := cell[0], cell[1], cell[2]

	return [NumCellEdges]Segment{
		{origin, a},
		{origin, b},
		{origin, c},
		{a, a.Add(b)},
		{a, a.Add(c)},
		{b, b.Add(a)},
		{b, b.Add(c)},
		{c, c.Add(a)},
		{c, c.Add(b)},
		{a.Add(b), a.Add(b).Add(c)},
		{a.Add(c), a.Add(c).Add(b)},
		{b.Add(c), b.Add(c).Add(a)},
	}
}
