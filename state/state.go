// Package state defines the pluggable value contracts every qdf region
// carries: how a value splits when a region is refined, how child values
// aggregate back into a parent, and how a leaf's value evolves from its
// neighbors during simulation.
//
// The engine never interprets state values itself; it only routes them
// through the Ops and Simulator capabilities supplied by the caller.
// Ready-made implementations cover the common cases: Unit/UnitOps for pure
// topology manipulation, SumOps for summing numeric densities, AnyOps for
// boolean occupancy, and Identity for a no-op transition rule.
package state

// Ops supplies the subdivision and aggregation rules for state values of
// type S. Implementations must be pure: no retained references to inputs.
//
// Subdivide must return exactly `parts` values — the initial states of the
// `parts` children of a region being refined, in child order. Merge
// aggregates a child-state slice back into one parent state. For summing
// value kinds the two must be consistent: Merge(Subdivide(s, k)) should
// reconstruct s (exactly, or up to rounding for floats) for every k ≥ 1.
type Ops[S any] interface {
	Subdivide(s S, parts int) []S
	Merge(parts []S) S
}

// Seeder is an optional capability an Ops implementation may provide.
// SuperState returns the root-level value that, repeatedly subdivided
// `levels` times with the given fan-out, yields the uniform leaf value —
// used to seed a structure from a desired leaf density.
//
// Check for it with a type assertion, io.ReaderFrom style:
//
//	if sd, ok := ops.(state.Seeder[S]); ok { root = sd.SuperState(leaf, k, n) }
type Seeder[S any] interface {
	SuperState(leaf S, fanOut, levels int) S
}

// Simulator computes a leaf's next state from its current state and the
// states of its neighbors. Implementations must be pure functions of their
// arguments: every leaf in one simulation step reads the same pre-step
// snapshot, which is what makes serial and parallel execution equivalent.
type Simulator[S any] interface {
	Simulate(current S, neighbors []S) S
}
