package vizparams

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values, matching the reference nitinol comparison setup.
const (
	defaultBondDistance = 3.2 // Å
	defaultAtomSize     = 300
	defaultBondWidth    = 1.5
	defaultBondAlpha    = 0.4
	defaultViewElev     = 20 // degrees
	defaultViewAzim     = 45 // degrees
)

// ViewAngles is the initial camera orientation handed to the rendering
// collaborator. The core never interprets these.
type ViewAngles struct {
	// Elev is the elevation angle in degrees.
	Elev float64 `yaml:"elev"`
	// Azim is the azimuth angle in degrees.
	Azim float64 `yaml:"azim"`
}

// Params is the shared visualization parameter set. Pass it by value;
// treat it as immutable after Validate.
type Params struct {
	// RepetitionsB2 are the per-axis repeat counts for the B2 cell.
	RepetitionsB2 [3]int `yaml:"repetitions_b2"`
	// RepetitionsB19 are the per-axis repeat counts for the B19' cell.
	RepetitionsB19 [3]int `yaml:"repetitions_b19"`
	// BondDistance is the bond cutoff in Å — a visualization tunable,
	// not a physical constant.
	BondDistance float64 `yaml:"bond_distance"`
	// AtomSize is the rendered atom marker size.
	AtomSize float64 `yaml:"atom_size"`
	// BondWidth is the rendered bond line width.
	BondWidth float64 `yaml:"bond_width"`
	// BondAlpha is the bond line opacity in [0, 1].
	BondAlpha float64 `yaml:"bond_alpha"`
	// InitialView is the starting camera orientation.
	InitialView ViewAngles `yaml:"initial_view"`
}

// Default returns the reference parameter set: B2 repeated (2,2,4),
// B19' repeated (2,2,2), 3.2 Å bond cutoff, and the standard styling.
func Default() Params {
	return Params{
		RepetitionsB2:  [3]int{2, 2, 4},
		RepetitionsB19: [3]int{2, 2, 2},
		BondDistance:   defaultBondDistance,
		AtomSize:       defaultAtomSize,
		BondWidth:      defaultBondWidth,
		BondAlpha:      defaultBondAlpha,
		InitialView:    ViewAngles{Elev: defaultViewElev, Azim: defaultViewAzim},
	}
}

// Load reads a YAML file over Default(): fields absent from the file
// keep their default values. The result is validated before return.
func Load(path string) (Params, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("vizparams: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("vizparams: parse %s: %w", path, err)
	}
	if err = p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// Validate checks every field against its allowed range. Invalid values
// are rejected, never clamped or defaulted.
func (p Params) Validate() error {
	for _, reps := range [][3]int{p.RepetitionsB2, p.RepetitionsB19} {
		for _, n := range reps {
			if n < 1 {
				return fmt.Errorf("vizparams: repetitions %v: %w", reps, ErrBadRepetitions)
			}
		}
	}
	if p.BondDistance <= 0 {
		return fmt.Errorf("vizparams: bond_distance=%v: %w", p.BondDistance, ErrBadBondDistance)
	}
	if p.AtomSize <= 0 || p.BondWidth <= 0 || p.BondAlpha < 0 || p.BondAlpha > 1 {
		return fmt.Errorf("vizparams: atom_size=%v bond_width=%v bond_alpha=%v: %w",
			p.AtomSize, p.BondWidth, p.BondAlpha, ErrBadStyle)
	}

	return nil
}
