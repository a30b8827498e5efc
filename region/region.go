package region

import (
	"fmt"

	"github.com/katalvlaran/qdf/id"
	"github.com/katalvlaran/qdf/mesh"
	"github.com/katalvlaran/qdf/state"
)

// Graph owns every region of one adaptive structure plus the undirected
// adjacency graph over the regions present at the current resolution.
//
// Invariants maintained by every operation:
//   - a non-leaf region has exactly dimensions+1 children; a leaf has none
//   - the adjacency graph contains exactly the regions at the current
//     resolution frontier; a refined region keeps its record (for
//     hierarchical queries) but is deleted from the adjacency store
//   - leaves ⊆ adjacency nodes ⊆ regions
//
// Graph is not safe for concurrent use; mutating operations must complete
// before the next operation begins.
type Graph[S any] struct {
	id         id.ID
	dimensions int
	ops        state.Ops[S]
	regions    map[id.ID]*Region[S]
	adj        *mesh.Graph
	leaves     map[id.ID]struct{}
	root       id.ID
}

// New creates a structure with a single root region holding rootState.
// The refinement fan-out is dimensions+1 (a simplex's child count).
func New[S any](dimensions int, rootState S, ops state.Ops[S]) *Graph[S] {
	root := id.New()
	g := &Graph[S]{
		id:         id.New(),
		dimensions: dimensions,
		ops:        ops,
		regions:    make(map[id.ID]*Region[S]),
		adj:        mesh.New(),
		leaves:     make(map[id.ID]struct{}),
		root:       root,
	}
	g.regions[root] = &Region[S]{id: root, parent: id.Nil, state: rootState}
	g.adj.AddNode(root)
	g.leaves[root] = struct{}{}

	return g
}

// NewWithLevels creates a structure and eagerly refines every leaf
// `levels` times, producing a uniform depth with (dimensions+1)^levels
// leaves under the root.
func NewWithLevels[S any](dimensions int, rootState S, levels int, ops state.Ops[S]) (*Graph[S], error) {
	g := New(dimensions, rootState, ops)
	for i := 0; i < levels; i++ {
		if err := g.Refine(g.root); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// NewWithMinimumState is NewWithLevels seeded from the other end:
// leafState is the value every leaf should end up holding, and the root
// state is back-computed through the Ops' optional state.Seeder
// capability. Returns ErrStateNotSeedable when ops lacks it.
func NewWithMinimumState[S any](dimensions int, leafState S, levels int, ops state.Ops[S]) (*Graph[S], error) {
	seeder, ok := ops.(state.Seeder[S])
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrStateNotSeedable, ops)
	}
	rootState := seeder.SuperState(leafState, dimensions+1, levels)

	return NewWithLevels(dimensions, rootState, levels, ops)
}

// ID returns the structure's own handle.
func (g *Graph[S]) ID() id.ID {
	return g.id
}

// Root returns the root region's handle.
func (g *Graph[S]) Root() id.ID {
	return g.root
}

// Dimensions returns the dimensionality supplied at construction.
func (g *Graph[S]) Dimensions() int {
	return g.dimensions
}

// FanOut returns the number of children produced by one refinement step.
func (g *Graph[S]) FanOut() int {
	return g.dimensions + 1
}

// Exists reports whether rid is known to the structure, at any level of
// the hierarchy.
func (g *Graph[S]) Exists(rid id.ID) bool {
	_, ok := g.regions[rid]

	return ok
}

// Region returns a copy of the region record for rid.
func (g *Graph[S]) Region(rid id.ID) (Region[S], error) {
	r, ok := g.regions[rid]
	if !ok {
		return Region[S]{}, fmt.Errorf("%w: %s", ErrSpaceNotFound, rid)
	}
	out := *r
	out.children = out.Children()

	return out, nil
}

// State returns rid's current payload.
func (g *Graph[S]) State(rid id.ID) (S, error) {
	r, ok := g.regions[rid]
	if !ok {
		var zero S

		return zero, fmt.Errorf("%w: %s", ErrSpaceNotFound, rid)
	}

	return r.state, nil
}

// Subregions returns the ordered child list of an already refined region.
// Returns ErrNotSubdivided when rid is a leaf.
func (g *Graph[S]) Subregions(rid id.ID) ([]id.ID, error) {
	r, ok := g.regions[rid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpaceNotFound, rid)
	}
	if r.IsLeaf() {
		return nil, fmt.Errorf("%w: %s", ErrNotSubdivided, rid)
	}

	return r.Children(), nil
}

// Neighbors returns rid's adjacency list in insertion order.
// A region absent from the adjacency graph (unknown, or already refined
// away) yields ErrSpaceNotFound.
func (g *Graph[S]) Neighbors(rid id.ID) ([]id.ID, error) {
	if !g.adj.HasNode(rid) {
		return nil, fmt.Errorf("%w: %s", ErrSpaceNotFound, rid)
	}

	return g.adj.Neighbors(rid), nil
}

// FindPath returns a fewest-hop path between two regions over the current
// adjacency graph, both endpoints included. An unreachable pair yields an
// empty path, not an error; only endpoints entirely unknown to the
// structure are errors.
func (g *Graph[S]) FindPath(from, to id.ID) ([]id.ID, error) {
	if _, ok := g.regions[from]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpaceNotFound, from)
	}
	if _, ok := g.regions[to]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpaceNotFound, to)
	}

	return g.adj.ShortestPath(from, to), nil
}

// Leaves returns the current leaf set, sorted by ID for reproducible
// iteration.
func (g *Graph[S]) Leaves() []id.ID {
	out := make([]id.ID, 0, len(g.leaves))
	for l := range g.leaves {
		out = append(out, l)
	}
	id.Sort(out)

	return out
}

// Len returns the total number of region records, refined ancestors
// included.
func (g *Graph[S]) Len() int {
	return len(g.regions)
}

// LeafCount returns the number of leaves at the current resolution.
func (g *Graph[S]) LeafCount() int {
	return len(g.leaves)
}
