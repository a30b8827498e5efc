package lod

import (
	"fmt"

	"github.com/katalvlaran/qdf/id"
	"github.com/katalvlaran/qdf/mesh"
	"github.com/katalvlaran/qdf/region"
	"github.com/katalvlaran/qdf/state"
)

// Tree samples one space at several uniform zoom levels simultaneously.
// It is fully built at construction — a complete tree of the requested
// depth, with same-depth adjacency wired across the whole tree — and never
// creates or destroys nodes afterward; only state values change. Every
// node at the maximum depth hosts an embedded region.Graph ("field")
// seeded from that node's state.
//
// Tree is not safe for concurrent use; mutating operations must complete
// before the next operation begins.
type Tree[S any] struct {
	id         id.ID
	dimensions int
	count      int // maximum depth; fixed after construction
	fanOut     int
	ops        state.Ops[S]
	levels     map[id.ID]*Level[S]
	fields     map[id.ID]*region.Graph[S]
	adj        *mesh.Graph
	root       id.ID
}

// New builds a complete tree of depth levelCount over the given
// dimensionality, with the root holding rootState. Each non-deepest node
// subdivides its state into fanOut children (default dimensions+2,
// configurable via WithFanOut); recursion stops at levelCount, where each
// node is seeded with an embedded adaptive field instead.
//
// After the node set exists, same-depth adjacency is established in one
// top-down pass: every cluster is cliqued, and each cluster's internal
// wiring is mirrored onto its same-depth neighbors by sibling index.
func New[S any](dimensions, levelCount int, rootState S, ops state.Ops[S], opts ...Option) (*Tree[S], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	fanOut := o.fanOut
	if fanOut == 0 {
		fanOut = dimensions + 2
	}

	root := id.New()
	t := &Tree[S]{
		id:         id.New(),
		dimensions: dimensions,
		count:      levelCount,
		fanOut:     fanOut,
		ops:        ops,
		levels:     make(map[id.ID]*Level[S]),
		fields:     make(map[id.ID]*region.Graph[S]),
		adj:        mesh.New(),
		root:       root,
	}
	t.levels[root] = &Level[S]{id: root, parent: id.Nil, depth: 0, index: 0, state: rootState}
	t.adj.AddNode(root)
	if err := t.subdivideLevel(t.levels[root]); err != nil {
		return nil, err
	}
	t.connectClusters()

	return t, nil
}

// subdivideLevel recursively grows the complete tree beneath l. Deepest
// nodes receive their embedded field; everything else receives fanOut
// children tagged with depth and sibling index. No wiring happens here —
// adjacency is established afterwards by connectClusters.
func (t *Tree[S]) subdivideLevel(l *Level[S]) error {
	if l.depth == t.count {
		field := region.New(t.dimensions, l.state, t.ops)
		l.field = field.ID()
		t.fields[field.ID()] = field

		return nil
	}

	parts := t.ops.Subdivide(l.state, t.fanOut)
	if len(parts) != t.fanOut {
		return fmt.Errorf("%w: Subdivide returned %d states, want %d", ErrInvalidFanOut, len(parts), t.fanOut)
	}
	l.children = make([]id.ID, t.fanOut)
	for i := range l.children {
		cid := id.New()
		l.children[i] = cid
		child := &Level[S]{id: cid, parent: l.id, depth: l.depth + 1, index: i, state: parts[i]}
		t.levels[cid] = child
		t.adj.AddNode(cid)
	}
	for _, cid := range l.children {
		if err := t.subdivideLevel(t.levels[cid]); err != nil {
			return err
		}
	}

	return nil
}

// connectClusters wires same-depth adjacency generation by generation.
// For each node of the current generation its child cluster is cliqued;
// then, for each same-depth neighbor of the node, the child at sibling
// index i is connected to the neighbor's child at the same index, for
// every i ≥ 1 that differs from the node's own sibling index — mirroring
// the cluster's internal wiring onto its neighbor's cluster. Processing a
// whole generation before descending guarantees each node's neighbor list
// is complete before its children are wired.
func (t *Tree[S]) connectClusters() {
	generation := []id.ID{t.root}
	for len(generation) > 0 {
		var next []id.ID
		for _, pid := range generation {
			p := t.levels[pid]
			if len(p.children) == 0 {
				continue
			}
			t.adj.Clique(p.children)
			next = append(next, p.children...)
		}
		for _, pid := range generation {
			p := t.levels[pid]
			if len(p.children) == 0 {
				continue
			}
			for _, nid := range t.adj.Neighbors(pid) {
				n := t.levels[nid]
				for i := 1; i < t.fanOut; i++ {
					if i == p.index {
						continue
					}
					t.adj.AddEdge(p.children[i], n.children[i])
				}
			}
		}
		generation = next
	}
}

// ID returns the tree's own handle.
func (t *Tree[S]) ID() id.ID {
	return t.id
}

// Root returns the root level's handle.
func (t *Tree[S]) Root() id.ID {
	return t.root
}

// Dimensions returns the dimensionality supplied at construction.
func (t *Tree[S]) Dimensions() int {
	return t.dimensions
}

// LevelCount returns the tree's maximum depth, fixed at construction.
func (t *Tree[S]) LevelCount() int {
	return t.count
}

// FanOut returns the number of children per subdivision.
func (t *Tree[S]) FanOut() int {
	return t.fanOut
}

// State returns the root level's current payload.
func (t *Tree[S]) State() S {
	return t.levels[t.root].state
}

// Exists reports whether lid names a level of the tree.
func (t *Tree[S]) Exists(lid id.ID) bool {
	_, ok := t.levels[lid]

	return ok
}

// Level returns a copy of the level record for lid.
func (t *Tree[S]) Level(lid id.ID) (Level[S], error) {
	l, ok := t.levels[lid]
	if !ok {
		return Level[S]{}, fmt.Errorf("%w: %s", ErrLevelNotFound, lid)
	}
	out := *l
	out.children = out.Children()

	return out, nil
}

// FieldExists reports whether fid names an embedded field.
func (t *Tree[S]) FieldExists(fid id.ID) bool {
	_, ok := t.fields[fid]

	return ok
}

// Field returns the embedded adaptive field with handle fid. The returned
// graph is the live structure: callers may refine, coarsen, and edit it
// directly, then reconcile level states with RecalculateState.
func (t *Tree[S]) Field(fid id.ID) (*region.Graph[S], error) {
	f, ok := t.fields[fid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, fid)
	}

	return f, nil
}

// FieldID returns the handle of the field embedded at level lid.
// Returns ErrFieldNotFound when lid is not a deepest-level node.
func (t *Tree[S]) FieldID(lid id.ID) (id.ID, error) {
	l, ok := t.levels[lid]
	if !ok {
		return id.Nil, fmt.Errorf("%w: %s", ErrLevelNotFound, lid)
	}
	if l.field.IsNil() {
		return id.Nil, fmt.Errorf("%w: level %s hosts no field", ErrFieldNotFound, lid)
	}

	return l.field, nil
}

// Neighbors returns lid's same-depth adjacency list in insertion order.
func (t *Tree[S]) Neighbors(lid id.ID) ([]id.ID, error) {
	if !t.adj.HasNode(lid) {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, lid)
	}

	return t.adj.Neighbors(lid), nil
}

// FindPath returns a fewest-hop path between two levels, both endpoints
// included. Adjacency never crosses depths, so endpoints at different
// depths yield an empty path — cross-depth paths are not defined. Only
// endpoints entirely unknown to the tree are errors.
func (t *Tree[S]) FindPath(from, to id.ID) ([]id.ID, error) {
	if _, ok := t.levels[from]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, from)
	}
	if _, ok := t.levels[to]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, to)
	}

	return t.adj.ShortestPath(from, to), nil
}

// deepestLevels returns the maximum-depth level set, sorted by id for
// reproducible iteration.
func (t *Tree[S]) deepestLevels() []id.ID {
	var out []id.ID
	for lid, l := range t.levels {
		if len(l.children) == 0 {
			out = append(out, lid)
		}
	}
	id.Sort(out)

	return out
}
