package lod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdf/id"
	"github.com/katalvlaran/qdf/lod"
	"github.com/katalvlaran/qdf/state"
)

// diffuse adds the neighborhood's states onto the current one.
type diffuse struct{}

func (diffuse) Simulate(current int, neighbors []int) int {
	next := current
	for _, n := range neighbors {
		next += n
	}

	return next
}

// average replaces the current state with the neighborhood mean,
// current included. On a uniform tree it is a fixed point.
type average struct{}

func (average) Simulate(current int, neighbors []int) int {
	sum := current
	for _, n := range neighbors {
		sum += n
	}

	return sum / (len(neighbors) + 1)
}

// TestSimulateStates_Snapshot predicts one step without mutating the tree.
func TestSimulateStates_Snapshot(t *testing.T) {
	tr, err := lod.New(2, 2, 16, state.SumOps[int]{})
	require.NoError(t, err)

	next := tr.SimulateStates(diffuse{})
	require.Len(t, next, 16)
	root, rerr := tr.Level(tr.Root())
	require.NoError(t, rerr)
	for _, cid := range root.Children() {
		c, cerr := tr.Level(cid)
		require.NoError(t, cerr)
		for j, gid := range c.Children() {
			// every deepest level holds 1; degree is 3 for index 0 and
			// 6 otherwise, so diffusion yields 4 or 7
			if j == 0 {
				require.Equal(t, 4, next[gid])
			} else {
				require.Equal(t, 7, next[gid])
			}
			g, gerr := tr.Level(gid)
			require.NoError(t, gerr)
			require.Equal(t, 1, g.State(), "prediction must not mutate")
		}
	}
	require.Equal(t, 16, tr.State())
}

// TestSimulationStep applies the prediction, pushes it into the fields,
// and re-merges the internal levels.
func TestSimulationStep(t *testing.T) {
	tr, err := lod.New(2, 2, 16, state.SumOps[int]{})
	require.NoError(t, err)

	require.NoError(t, tr.SimulationStep(diffuse{}))

	// per cluster: 4 + 7 + 7 + 7 = 25; four clusters re-merge to 100
	root, rerr := tr.Level(tr.Root())
	require.NoError(t, rerr)
	for _, cid := range root.Children() {
		c, cerr := tr.Level(cid)
		require.NoError(t, cerr)
		require.Equal(t, 25, c.State())
	}
	require.Equal(t, 100, tr.State())

	// deepest states landed in the embedded fields too
	for _, cid := range root.Children() {
		c, cerr := tr.Level(cid)
		require.NoError(t, cerr)
		gid := c.Children()[1]
		fid, ferr := tr.FieldID(gid)
		require.NoError(t, ferr)
		f, ferr := tr.Field(fid)
		require.NoError(t, ferr)
		st, serr := f.State(f.Root())
		require.NoError(t, serr)
		require.Equal(t, 7, st)
	}
}

// TestSimulationStep_FixedPoint: averaging a uniform tree changes nothing.
func TestSimulationStep_FixedPoint(t *testing.T) {
	tr, err := lod.New(2, 2, 16, state.SumOps[int]{})
	require.NoError(t, err)

	require.NoError(t, tr.SimulationStep(average{}))
	require.Equal(t, 16, tr.State())
}

// TestSimulate_SerialParallelEquivalence seeds an uneven tree, checks the
// parallel prediction matches the serial one, then applies the parallel
// step and verifies every deepest level landed on the serial prediction.
func TestSimulate_SerialParallelEquivalence(t *testing.T) {
	tr, err := lod.New(3, 3, 0, state.SumOps[int]{})
	require.NoError(t, err)

	var seed func(lid id.ID, i int) int
	seed = func(lid id.ID, i int) int {
		l, lerr := tr.Level(lid)
		require.NoError(t, lerr)
		if l.IsDeepest() {
			require.NoError(t, tr.SetLevelState(lid, i*i%37))

			return i + 1
		}
		for _, c := range l.Children() {
			i = seed(c, i)
		}

		return i
	}
	seed(tr.Root(), 0)

	serial := tr.SimulateStates(diffuse{})
	parallel := tr.SimulateStatesParallel(diffuse{})
	require.Equal(t, serial, parallel)

	require.NoError(t, tr.SimulationStepParallel(diffuse{}))
	for lid, want := range serial {
		l, lerr := tr.Level(lid)
		require.NoError(t, lerr)
		require.Equal(t, want, l.State())
	}
}

// TestSimulationStepParallel_DepthZero exercises the degenerate pool with a
// single deepest level.
func TestSimulationStepParallel_DepthZero(t *testing.T) {
	tr, err := lod.New(2, 0, 5, state.SumOps[int]{})
	require.NoError(t, err)

	require.NoError(t, tr.SimulationStepParallel(diffuse{}))
	require.Equal(t, 5, tr.State(), "no neighbors, state carries over")
}
