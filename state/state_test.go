package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdf/state"
)

// TestSumOps_Conservation pins the subdivide/merge inverse law for
// integers: Merge(Subdivide(s, k)) == s exactly, for every tested k,
// remainders and negative values included.
func TestSumOps_Conservation(t *testing.T) {
	ops := state.SumOps[int]{}
	for _, s := range []int{0, 1, 7, 9, 100, 101, -1, -7, -100} {
		for k := 1; k <= 12; k++ {
			parts := ops.Subdivide(s, k)
			require.Len(t, parts, k)
			require.Equal(t, s, ops.Merge(parts), "s=%d k=%d parts=%v", s, k, parts)
		}
	}
}

// TestSumOps_RemainderSpread checks the leading children absorb the
// remainder one unit each.
func TestSumOps_RemainderSpread(t *testing.T) {
	ops := state.SumOps[int]{}
	require.Equal(t, []int{4, 3, 3}, ops.Subdivide(10, 3))
	require.Equal(t, []int{3, 3, 3}, ops.Subdivide(9, 3))
	require.Equal(t, []int{-3, -2, -2}, ops.Subdivide(-7, 3))
}

// TestSumOps_Unsigned exercises an unsigned kind through the same law.
func TestSumOps_Unsigned(t *testing.T) {
	ops := state.SumOps[uint32]{}
	for _, s := range []uint32{0, 5, 16, 255} {
		for k := 1; k <= 8; k++ {
			require.Equal(t, s, ops.Merge(ops.Subdivide(s, k)))
		}
	}
}

// TestSumOps_SuperState checks the seeding inverse: the super-state,
// repeatedly subdivided, reproduces the uniform leaf value.
func TestSumOps_SuperState(t *testing.T) {
	ops := state.SumOps[int]{}
	require.Equal(t, 9, ops.SuperState(1, 3, 2))
	require.Equal(t, 16, ops.SuperState(1, 4, 2))
	require.Equal(t, 5, ops.SuperState(5, 3, 0))

	// round-trip: subdividing the super-state twice yields uniform leaves
	level1 := ops.Subdivide(ops.SuperState(2, 3, 2), 3)
	for _, s := range level1 {
		for _, leaf := range ops.Subdivide(s, 3) {
			require.Equal(t, 2, leaf)
		}
	}
}

// TestFloatSumOps_Conservation allows rounding noise for floats.
func TestFloatSumOps_Conservation(t *testing.T) {
	ops := state.FloatSumOps[float64]{}
	for _, s := range []float64{0, 1, 9.5, -2.25, 1e6} {
		for k := 1; k <= 10; k++ {
			parts := ops.Subdivide(s, k)
			require.Len(t, parts, k)
			require.InDelta(t, s, ops.Merge(parts), 1e-9)
		}
	}
	require.Equal(t, 100.0, ops.SuperState(1.0, 10, 2))
}

// TestAnyOps covers the boolean occupancy rules.
func TestAnyOps(t *testing.T) {
	ops := state.AnyOps{}
	require.Equal(t, []bool{true, true, true}, ops.Subdivide(true, 3))
	require.Equal(t, []bool{false, false}, ops.Subdivide(false, 2))
	require.True(t, ops.Merge([]bool{false, true, false}))
	require.False(t, ops.Merge([]bool{false, false}))
	require.False(t, ops.Merge(nil))
}

// TestUnitOps covers the no-payload default.
func TestUnitOps(t *testing.T) {
	ops := state.UnitOps{}
	require.Len(t, ops.Subdivide(state.Unit{}, 4), 4)
	require.Equal(t, state.Unit{}, ops.Merge(nil))
}

// TestIdentity returns the current state unchanged.
func TestIdentity(t *testing.T) {
	sim := state.Identity[int]{}
	require.Equal(t, 42, sim.Simulate(42, []int{1, 2, 3}))
}

// compile-time capability checks
var (
	_ state.Ops[int]        = state.SumOps[int]{}
	_ state.Seeder[int]     = state.SumOps[int]{}
	_ state.Ops[float64]    = state.FloatSumOps[float64]{}
	_ state.Seeder[float64] = state.FloatSumOps[float64]{}
	_ state.Ops[bool]       = state.AnyOps{}
	_ state.Ops[state.Unit] = state.UnitOps{}
	_ state.Simulator[int]  = state.Identity[int]{}
)
