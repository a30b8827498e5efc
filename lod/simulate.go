package lod

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qdf/id"
	"github.com/katalvlaran/qdf/state"
)

// SimulateStates computes one simulation step over the deepest level set
// without applying it: every maximum-depth level's next state is derived
// from its current state and its same-depth neighbors' states, all read
// from the same pre-step snapshot. The tree is not mutated.
func (t *Tree[S]) SimulateStates(sim state.Simulator[S]) map[id.ID]S {
	deepest := t.deepestLevels()
	next := make(map[id.ID]S, len(deepest))
	for _, lid := range deepest {
		next[lid] = t.simulateLevel(sim, lid)
	}

	return next
}

// SimulateStatesParallel is SimulateStates with the per-level compute
// phase fanned out across a worker pool. Each worker only reads the
// pre-step snapshot, so the result is identical to the serial variant.
func (t *Tree[S]) SimulateStatesParallel(sim state.Simulator[S]) map[id.ID]S {
	deepest := t.deepestLevels()
	results := make([]S, len(deepest))

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(deepest) + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for start := 0; start < len(deepest); start += chunk {
		start := start
		end := min(start+chunk, len(deepest))
		eg.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = t.simulateLevel(sim, deepest[i])
			}

			return nil
		})
	}
	// workers cannot fail; Wait only joins the pool
	_ = eg.Wait()

	next := make(map[id.ID]S, len(deepest))
	for i, lid := range deepest {
		next[lid] = results[i]
	}

	return next
}

// SimulationStep computes SimulateStates, writes every next state into its
// level (pushing through into the embedded fields' roots), then re-merges
// every internal level bottom-up.
func (t *Tree[S]) SimulationStep(sim state.Simulator[S]) error {
	return t.applyStep(t.SimulateStates(sim))
}

// SimulationStepParallel is SimulationStep with the compute phase run on a
// worker pool; write-back and the re-merge stay sequential.
func (t *Tree[S]) SimulationStepParallel(sim state.Simulator[S]) error {
	return t.applyStep(t.SimulateStatesParallel(sim))
}

// applyStep writes the computed next states into the deepest levels and
// their fields, then re-derives every internal level.
func (t *Tree[S]) applyStep(next map[id.ID]S) error {
	for lid, s := range next {
		if err := t.imposeState(t.levels[lid], s); err != nil {
			return err
		}
	}
	t.pullState(t.levels[t.root])

	return nil
}

// simulateLevel computes one deepest level's next state from the current
// snapshot.
func (t *Tree[S]) simulateLevel(sim state.Simulator[S], lid id.ID) S {
	neighbors := t.adj.Neighbors(lid)
	states := make([]S, len(neighbors))
	for i, n := range neighbors {
		states[i] = t.levels[n].state
	}

	return sim.Simulate(t.levels[lid].state, states)
}
