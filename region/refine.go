package region

import (
	"fmt"

	"github.com/katalvlaran/qdf/id"
)

// Refine increases local resolution under rid.
//
// An already refined region pushes the call down to the current frontier
// of leaves beneath it. A leaf is split into dimensions+1 children: the
// leaf's state is subdivided across them, the children are wired into a
// complete subgraph (a simplex's children are mutually adjacent), and each
// pre-existing neighbor of the leaf inherits exactly one child by
// positional correspondence — the i-th neighbor, in insertion order, is
// connected to child i. Children beyond the neighbor count are boundary
// children and receive no external edge. The refined region keeps its
// record, with children populated, but leaves the adjacency graph and the
// leaf set.
//
// A failure inside the recursion does not roll back sibling subtrees that
// were already refined before the error surfaced.
func (g *Graph[S]) Refine(rid id.ID) error {
	r, ok := g.regions[rid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSpaceNotFound, rid)
	}
	if !r.IsLeaf() {
		for _, c := range r.children {
			if err := g.Refine(c); err != nil {
				return err
			}
		}

		return nil
	}

	fanOut := g.FanOut()
	parts := g.ops.Subdivide(r.state, fanOut)
	if len(parts) != fanOut {
		return fmt.Errorf("%w: Subdivide returned %d states, want %d", ErrInvalidFanOut, len(parts), fanOut)
	}

	children := make([]id.ID, fanOut)
	for i := range children {
		cid := id.New()
		children[i] = cid
		g.regions[cid] = &Region[S]{id: cid, parent: rid, state: parts[i]}
		g.leaves[cid] = struct{}{}
	}
	g.adj.Clique(children)
	g.adj.Rewire(rid, children)
	delete(g.leaves, rid)
	r.children = children

	return nil
}

// Coarsen attempts to collapse one level of refinement rooted at rid and
// reports whether the subtree is now fully collapsed.
//
// A leaf is already minimal: Coarsen returns true without touching the
// graph. Otherwise each non-leaf child is recursively coarsened (mutating
// deeper levels), and the collapse of rid itself happens only on a call
// where every child is already a leaf: rid reclaims the external
// neighbors of its child cluster, the children are deleted from the
// structure, and rid becomes a leaf again. Either way the call reports
// false — a multi-level subtree needs one call per level (see
// CoarsenFully).
//
// A failure inside the recursion does not roll back sibling subtrees that
// were already collapsed before the error surfaced.
func (g *Graph[S]) Coarsen(rid id.ID) (bool, error) {
	r, ok := g.regions[rid]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrSpaceNotFound, rid)
	}
	if r.IsLeaf() {
		return true, nil
	}

	allReady := true
	for _, c := range r.children {
		if g.regions[c].IsLeaf() {
			continue
		}
		allReady = false
		if _, err := g.Coarsen(c); err != nil {
			return false, err
		}
	}
	if allReady {
		g.collapse(r)
	}

	return false, nil
}

// CoarsenFully invokes Coarsen until the subtree rooted at rid is a
// single leaf. Cost is proportional to the subtree depth.
func (g *Graph[S]) CoarsenFully(rid id.ID) error {
	for {
		done, err := g.Coarsen(rid)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// collapse merges r's all-leaf child cluster back into r: r inherits the
// cluster's external neighbors (in discovery order), the children are
// removed from the structure, and r rejoins the leaf set. r's state is
// left as is — it was kept consistent by SetState / simulation re-merges.
func (g *Graph[S]) collapse(r *Region[S]) {
	members := make(map[id.ID]struct{}, len(r.children))
	for _, c := range r.children {
		members[c] = struct{}{}
	}

	// external neighbors of the child set, deduped, in discovery order
	var external []id.ID
	seen := make(map[id.ID]struct{})
	for _, c := range r.children {
		for _, n := range g.adj.Neighbors(c) {
			if _, in := members[n]; in {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			external = append(external, n)
		}
	}

	g.adj.AddNode(r.id)
	for _, n := range external {
		g.adj.AddEdge(r.id, n)
	}
	for _, c := range r.children {
		g.adj.RemoveNode(c)
		delete(g.regions, c)
		delete(g.leaves, c)
	}
	r.children = nil
	g.leaves[r.id] = struct{}{}
}
