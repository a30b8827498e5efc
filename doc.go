// Package qdf models an abstract N-dimensional information space as a
// hierarchically refinable partition — a quantized density field.
//
// 🚀 What is qdf?
//
//	A pure-Go engine for spaces that change resolution while you query them:
//		• Adaptive region graph: split a region into a cluster of mutually
//		  adjacent subregions, merge clusters back, and keep the adjacency
//		  graph consistent through every reshape
//		• Pluggable state: every region carries a caller-defined value with
//		  caller-supplied subdivide/merge rules
//		• Neighbor-driven simulation: a per-leaf transition rule evaluated
//		  against a pre-step snapshot, serially or across a worker pool
//		• Level-of-detail tree: a fixed-depth multiresolution view of the
//		  same space, wired with the same clique-and-rewire primitive
//
// ✨ Why choose qdf?
//
//   - Topology first – no coordinate system, no geometry; pure graph
//     correctness with pinned, deterministic neighbor ordering
//   - Symmetric operations – refine and coarsen are mutual inverses, and the
//     test suite holds them to it
//   - Extensible – bring your own State and Simulator; numeric defaults are
//     included for scalar densities
//
// Everything is organized under five subpackages:
//
//	id/     — opaque, totally ordered 128-bit handles used as map keys
//	state/  — State/Simulate contracts + ready-made numeric and no-op impls
//	mesh/   — ordered adjacency store, clique-and-rewire, BFS shortest hop
//	region/ — the adaptive engine: refine, coarsen, paths, simulation
//	lod/    — the fixed-depth level tree with embedded per-leaf fields
//
// Quick ASCII example (dimensions=2, one refinement):
//
//	    R          a───b
//	   (9)   →      ╲ ╱     each child holds 3 (9 subdivided by 3)
//	                 c
//
// Dive into the per-package doc.go files for contracts, determinism notes,
// and complexity guarantees.
//
//	go get github.com/katalvlaran/qdf
package qdf
