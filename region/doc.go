// Package region provides the adaptive engine of qdf: a partition of an
// abstract N-dimensional information space that can be refined and
// coarsened online while an undirected adjacency graph over the current
// resolution stays consistent and queryable.
//
// What
//
//   - Refine(id): split a leaf into dimensions+1 mutually adjacent children;
//     an already refined region pushes the split down to its leaf frontier.
//   - Coarsen(id) / CoarsenFully(id): collapse a fully-leaf child cluster
//     back into its parent, one level per call / to completion.
//   - Neighbors(id), FindPath(from, to): adjacency and fewest-hop queries
//     over the current resolution.
//   - SetState(id, s): direct payload edit with downward re-imposition and
//     upward re-merge, keeping the whole hierarchy consistent.
//   - SimulateStates / SimulationStep (+Parallel): per-leaf transition rule
//     driven by neighbor states against a pre-step snapshot.
//
// Why
//
//   - Model a scalar or structured field whose resolution follows demand:
//     refine where detail matters, coarsen where it no longer does, and keep
//     asking "what touches what" and "how do I get from a to b" throughout.
//
// Determinism
//
//	Neighbor inheritance during refinement is positional: the i-th neighbor
//	of the refined region, in adjacency insertion order, is rewired to child
//	i. The engine has no coordinate system, so this enumeration order *is*
//	the semantics; it is fixed, documented, and pinned by the test suite.
//	Leaf snapshots are sorted by id, making simulation results and their
//	parallel/serial equivalence reproducible.
//
// Concurrency
//
//	All mutating operations are single-threaded and run to completion; the
//	only concurrency is the read-only compute phase of a simulation step,
//	fanned out over an errgroup worker pool. A Graph must not be mutated
//	while any other operation on it is in flight.
//
// Error semantics
//
//	A recursive Refine/Coarsen that fails partway through a child loop does
//	not roll back siblings already processed: mutations completed before the
//	error stay applied. Callers that need all-or-nothing behavior must
//	snapshot beforehand. All failures are reported, never silently ignored:
//	ErrSpaceNotFound, ErrNotSubdivided, ErrInvalidFanOut, ErrStateNotSeedable.
//
// Complexity (k = dimensions+1, L = leaves, V/E = adjacency size)
//
//   - Refine on a leaf: O(k²). Coarsen per level: O(k·deg).
//   - FindPath: O(V + E). Simulation step: O(L·k) plus one O(n) re-merge.
//
// See the concrete 2-dimensional walk-through in example_test.go.
package region
