package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/crystal/carve"
	"github.com/katalvlaran/crystal/lattice"
	"github.com/katalvlaran/crystal/phase"
	"github.com/katalvlaran/crystal/view"
)

var (
	wireLength   float64
	wireDiameter float64
)

// wireCmd carves a cylindrical nitinol wire from a bulk B2 lattice.
var wireCmd = &cobra.Command{
	Use:   "wire",
	Short: "Carve a cylindrical B2 nitinol wire from a bulk lattice",
	Long: `Tiles the B2 austenite unit cell to cover the requested wire
dimensions, then keeps only the atoms inside the cylinder of the given
diameter around the central z axis.

Example:
  crystal wire --length 30 --diameter 15`,
	RunE: runWire,
}

func init() {
	wireCmd.Flags().Float64Var(&wireLength, "length", 30, "wire length along z, in Å")
	wireCmd.Flags().Float64Var(&wireDiameter, "diameter", 15, "wire diameter, in Å")
}

func runWire(cmd *cobra.Command, args []string) error {
	p := phase.DefaultB2Params()
	cell, err := phase.B2(p)
	if err != nil {
		return err
	}

	reps, err := wireRepeats(wireLength, wireDiameter, p.A)
	if err != nil {
		return err
	}
	bulk, err := cell.Replicate(reps[0], reps[1], reps[2])
	if err != nil {
		return err
	}
	logger.Debug("bulk lattice tiled", zap.Ints("repeats", reps[:]), zap.Int("atoms", bulk.Len()))

	// Cylinder axis through the centre of the x/y cross-section.
	bounds := bulk.Cell()
	center := lattice.Vec3{bounds[0][0] / 2, bounds[1][1] / 2, 0}
	keep, err := carve.Cylinder(carve.AxisZ, center, wireDiameter/2)
	if err != nil {
		return err
	}
	wire, err := carve.Filter(bulk, keep)
	if err != nil {
		return err
	}

	// NewFrame rejects an empty set, which here means the cylinder
	// missed every atom.
	frame, err := view.NewFrame(wire)
	if err != nil {
		return err
	}
	logger.Info("wire carved", zap.Int("atoms", wire.Len()), zap.Int("removed", bulk.Len()-wire.Len()))

	fmt.Fprintln(cmd.OutOrStdout(), renderWire(wire, frame, wireLength, wireDiameter))

	return nil
}

// wireRepeats derives per-axis repeat counts covering the requested wire
// dimensions, one unit cell per lattice parameter a (truncating, as the
// carve removes any excess). Dimensions below one unit cell are rejected
// rather than rounded up.
func wireRepeats(length, diameter, a float64) ([3]int, error) {
	nxy := int(diameter / a)
	nz := int(length / a)
	if nxy < 1 || nz < 1 {
		return [3]int{}, fmt.Errorf("wire: length=%v Å diameter=%v Å below one unit cell (a=%v Å)",
			length, diameter, a)
	}

	return [3]int{nxy, nxy, nz}, nil
}
