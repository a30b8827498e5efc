// Package lod provides the fixed-depth multiresolution view of a qdf
// space: a complete tree sampling the same information space at several
// uniform zoom levels simultaneously.
//
// What
//
//   - New builds the whole tree at construction: the root state is
//     subdivided fanOut ways per generation down to the configured depth,
//     each node tagged with its depth and sibling index. The node set never
//     changes afterward — only state values do.
//   - Every maximum-depth node hosts an embedded region.Graph ("field")
//     seeded from that node's state, so each deepest sample can still be
//     refined adaptively underneath its fixed zoom level.
//   - Same-depth adjacency is wired with the engine's shared
//     clique-and-rewire primitive: each cluster is cliqued, then its
//     internal wiring is mirrored onto its same-depth neighbors by sibling
//     index, one generation at a time.
//   - SetLevelState, SimulationStep(+Parallel), Neighbors and FindPath
//     behave as in package region, scoped to the tree's store; paths never
//     cross depths. RecalculateState reconciles level states after a field
//     was mutated directly.
//
// Fan-out
//
//	The tree's fan-out is a configuration parameter independent of the
//	dimensionality (default dimensions+2, override with WithFanOut) —
//	unlike the adaptive engine, nothing ties it to a simplex child count.
//
// Errors
//
//	ErrLevelNotFound, ErrFieldNotFound, ErrInvalidFanOut; all fallible
//	operations return explicit errors and malformed input is never
//	silently ignored.
package lod
