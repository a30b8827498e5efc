package region_test

import (
	"fmt"

	"github.com/katalvlaran/qdf/region"
	"github.com/katalvlaran/qdf/state"
)

// ExampleGraph walks the canonical 2-dimensional scenario: a root density
// of 9 refined into a triangle of 3s, refined again under one corner, and
// coarsened back to the original single region.
func ExampleGraph() {
	g := region.New(2, 9, state.SumOps[int]{})

	_ = g.Refine(g.Root())
	subs, _ := g.Subregions(g.Root())
	for _, s := range subs {
		st, _ := g.State(s)
		ns, _ := g.Neighbors(s)
		fmt.Printf("child state=%d neighbors=%d\n", st, len(ns))
	}

	_ = g.Refine(subs[0])
	fmt.Println("leaves after second refine:", g.LeafCount())

	_ = g.CoarsenFully(g.Root())
	rootState, _ := g.State(g.Root())
	fmt.Printf("collapsed back to state=%d leaves=%d\n", rootState, g.LeafCount())

	// Output:
	// child state=3 neighbors=2
	// child state=3 neighbors=2
	// child state=3 neighbors=2
	// leaves after second refine: 5
	// collapsed back to state=9 leaves=1
}

// ExampleGraph_simulation runs one neighbor-averaging step over a uniform
// two-level structure.
func ExampleGraph_simulation() {
	g, _ := region.NewWithLevels(2, 90, 1, state.SumOps[int]{})

	g.SimulationStep(average{})

	rootState, _ := g.State(g.Root())
	fmt.Println("root after step:", rootState)
	// Output:
	// root after step: 90
}

// average replaces a leaf's state with the mean of itself and its
// neighbors; on a uniform field it is a fixed point.
type average struct{}

func (average) Simulate(current int, neighbors []int) int {
	sum := current
	for _, n := range neighbors {
		sum += n
	}

	return sum / (len(neighbors) + 1)
}
