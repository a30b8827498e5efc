package region

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qdf/id"
	"github.com/katalvlaran/qdf/state"
)

// SimulateStates computes one simulation step without applying it: for
// every leaf, the supplied Simulator receives the leaf's state and its
// neighbors' states, all read from the same pre-step snapshot, and the
// resulting next states are returned keyed by leaf id. The structure is
// not mutated.
//
// Because every leaf reads only the pre-step snapshot, the result is
// independent of leaf visitation order.
func (g *Graph[S]) SimulateStates(sim state.Simulator[S]) map[id.ID]S {
	leaves := g.Leaves()
	next := make(map[id.ID]S, len(leaves))
	for _, l := range leaves {
		next[l] = g.simulateLeaf(sim, l)
	}

	return next
}

// SimulateStatesParallel is SimulateStates with the per-leaf compute phase
// fanned out across a worker pool. The compute phase is embarrassingly
// data-parallel — each worker only reads the pre-step snapshot — so no
// synchronization beyond the final join is needed, and the result is
// identical to the serial variant.
func (g *Graph[S]) SimulateStatesParallel(sim state.Simulator[S]) map[id.ID]S {
	leaves := g.Leaves()
	results := make([]S, len(leaves))

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(leaves) + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for start := 0; start < len(leaves); start += chunk {
		start := start
		end := min(start+chunk, len(leaves))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = g.simulateLeaf(sim, leaves[i])
			}

			return nil
		})
	}
	// workers cannot fail; Wait only joins the pool
	_ = eg.Wait()

	next := make(map[id.ID]S, len(leaves))
	for i, l := range leaves {
		next[l] = results[i]
	}

	return next
}

// SimulationStep computes SimulateStates, writes every next state into its
// leaf, then re-merges every internal state bottom-up so non-leaf regions
// stay consistent with the updated leaves.
func (g *Graph[S]) SimulationStep(sim state.Simulator[S]) {
	g.applyStep(g.SimulateStates(sim))
}

// SimulationStepParallel is SimulationStep with the compute phase run on a
// worker pool; write-back and the ancestor re-merge stay sequential.
func (g *Graph[S]) SimulationStepParallel(sim state.Simulator[S]) {
	g.applyStep(g.SimulateStatesParallel(sim))
}

// applyStep writes the computed next states and re-merges internal states.
func (g *Graph[S]) applyStep(next map[id.ID]S) {
	for rid, s := range next {
		g.regions[rid].state = s
	}
	g.remergeSubtree(g.root)
}

// simulateLeaf computes one leaf's next state from the current snapshot.
func (g *Graph[S]) simulateLeaf(sim state.Simulator[S], leaf id.ID) S {
	neighbors := g.adj.Neighbors(leaf)
	states := make([]S, len(neighbors))
	for i, n := range neighbors {
		states[i] = g.regions[n].state
	}

	return sim.Simulate(g.regions[leaf].state, states)
}
