// Package mesh provides the undirected, unweighted adjacency store shared
// by the qdf engines, together with the two wiring primitives that make
// hierarchical refinement work: Clique and Rewire.
//
// What
//
//   - Graph: node/edge storage with insertion-ordered neighbor lists.
//   - Clique(ids): connect a child cluster pairwise (a simplex's children
//     are mutually adjacent).
//   - Rewire(old, children): hand each pre-existing neighbor of old to one
//     child by positional correspondence, then delete old from the store.
//   - ShortestPath(from, to): breadth-first fewest-hop search.
//
// Determinism
//
//	Neighbor lists are slices appended in edge-insertion order, never maps:
//	"which new child inherits which old neighbor" is defined purely by
//	enumeration order, so that order is part of the observable contract and
//	must be reproducible run to run. Removal splices the list and preserves
//	the order of the survivors.
//
// Complexity (V = nodes, E = edges, d = degree)
//
//   - AddEdge / RemoveEdge / HasEdge: O(d) membership scan; degrees here are
//     bounded by the structure fan-out, so effectively O(1).
//   - Clique(k ids): O(k²). Rewire: O(d·k). ShortestPath: O(V + E).
//
// mesh has no opinion about what a node means; region and lod both build
// their topology on it.
package mesh
