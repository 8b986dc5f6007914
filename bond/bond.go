package bond

import (
	"fmt"

	"github.com/katalvlaran/crystal/lattice"
)

// Graph is an undirected edge list over atom indices of one AtomSet.
// It is recomputed fresh by Build and immutable afterwards.
type Graph struct {
	numAtoms int
	edges    [][2]int
	index    map[[2]int]struct{}
}

// Build derives the bond graph of set under the given cutoff distance.
// For every pair of distinct indices i < j, the edge {i, j} is included
// iff the Euclidean distance between the atoms' positions is strictly
// less than cutoff; atoms exactly at the cutoff are not bonded.
//
// Edges are emitted in deterministic (i, j) lexicographic order.
//
// Returns ErrBadCutoff for cutoff ≤ 0 and ErrEmptyAtomSet for a nil or
// empty set.
// Complexity: O(n²) time, O(n + E) memory.
func Build(set *lattice.AtomSet, cutoff float64) (*Graph, error) {
	if cutoff <= 0 {
		return nil, fmt.Errorf("Build: cutoff=%v: %w", cutoff, ErrBadCutoff)
	}
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyAtomSet)
	}

	n := set.Len()
	g := &Graph{
		numAtoms: n,
		index:    make(map[[2]int]struct{}),
	}
	for i := 0; i < n; i++ {
		pi := set.At(i).Position
		for j := i + 1; j < n; j++ {
			if pi.Distance(set.At(j).Position) < cutoff {
				e := [2]int{i, j}
				g.edges = append(g.edges, e)
				g.index[e] = struct{}{}
			}
		}
	}

	return g, nil
}

// NumAtoms returns the atom count of the source AtomSet.
func (g *Graph) NumAtoms() int {
	return g.numAtoms
}

// Len returns the number of edges.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Edges returns a copy of the edge list; each edge is (i, j) with i < j.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)

	return out
}

// Has reports whether atoms i and j are bonded. The answer is symmetric
// in its arguments; self-pairs are never bonded. Complexity: O(1).
func (g *Graph) Has(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	_, ok := g.index[[2]int{i, j}]

	return ok
}
