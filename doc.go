// Package crystal is a small engine for building finite atomic-lattice
// models and deriving the geometry needed to render them.
//
// 🚀 What is crystal?
//
//	A deterministic, pure-computation library that brings together:
//		• Core primitives: immutable unit cells, species-tagged atoms, tiled atom sets
//		• Phase builders: B2 (cubic austenite) and B19' (monoclinic martensite) cells
//		• Replication: integer tiling of a unit cell into a finite structure
//		• Carving: geometric region filters, e.g. cutting a cylindrical wire
//		• Bond graphs: distance-threshold proximity edges for rendering
//		• View frames: equal-aspect bounding cubes and cell-edge segments
//
// ✨ Why choose crystal?
//
//   - Deterministic – same inputs always produce the same structures, in the same order
//   - Fail-fast – invalid parameters surface as sentinel errors, never silent clamping
//   - Pure Go – value types all the way down, no mutation after construction
//   - Renderer-agnostic – outputs are plain atom lists, index pairs and segments
//
// Everything is organized under flat domain subpackages:
//
//	lattice/   — Vec3, Atom, UnitCell, AtomSet and Replicate
//	phase/     — B2 and B19' unit-cell builders with NiTi defaults
//	carve/     — region predicates (cylinder) and stable subset filtering
//	bond/      — distance-threshold bond graphs
//	view/      — bounding cubes and the 12 cell-edge segments
//	vizparams/ — the shared, YAML-loadable visualization parameter set
//	cmd/       — the crystal CLI: `compare` and `wire`
//
// Data flows one way:
//
//	phase → UnitCell → Replicate → AtomSet → (carve) → {bond, view} → renderer
//
//	go get github.com/katalvlaran/crystal
package crystal
