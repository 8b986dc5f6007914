package bond_test

import (
	"fmt"

	"github.com/katalvlaran/crystal/bond"
	"github.com/katalvlaran/crystal/lattice"
	"github.com/katalvlaran/crystal/phase"
)

// ExampleBuild derives the bond graph of a tiled B2 nitinol structure
// under the reference 3.2 Å cutoff.
func ExampleBuild() {
	cell, err := phase.B2(phase.B2Params{A: 3.015, Corner: lattice.Ti, Center: lattice.Ni})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	set, err := cell.Replicate(2, 2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	g, err := bond.Build(set, 3.2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("atoms:", g.NumAtoms())
	fmt.Println("bonds:", g.Len())
	fmt.Println("0-1 bonded:", g.Has(0, 1))
	// Output:
	// atoms: 16
	// bonds: 51
	// 0-1 bonded: true
}
