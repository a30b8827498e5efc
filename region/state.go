package region

import (
	"fmt"

	"github.com/katalvlaran/qdf/id"
)

// SetState replaces rid's payload with s and restores state consistency in
// both directions: downward, any finer structure beneath rid is re-imposed
// by subdividing s depth-first through the hierarchy; upward, every
// ancestor re-merges its children's states, root included.
func (g *Graph[S]) SetState(rid id.ID, s S) error {
	r, ok := g.regions[rid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSpaceNotFound, rid)
	}
	if err := g.imposeState(r, s); err != nil {
		return err
	}
	g.remergeAncestors(r.parent)

	return nil
}

// imposeState writes s into r and, when r is refined, subdivides s with
// the region's own fan-out and applies each part to the corresponding
// child, depth-first.
func (g *Graph[S]) imposeState(r *Region[S], s S) error {
	r.state = s
	if r.IsLeaf() {
		return nil
	}
	parts := g.ops.Subdivide(s, len(r.children))
	if len(parts) != len(r.children) {
		return fmt.Errorf("%w: Subdivide returned %d states, want %d", ErrInvalidFanOut, len(parts), len(r.children))
	}
	for i, c := range r.children {
		if err := g.imposeState(g.regions[c], parts[i]); err != nil {
			return err
		}
	}

	return nil
}

// remergeAncestors walks the ancestor chain from pid to the root,
// recomputing each ancestor's state as the merge of its children's
// current states.
func (g *Graph[S]) remergeAncestors(pid id.ID) {
	for !pid.IsNil() {
		p := g.regions[pid]
		p.state = g.mergeChildren(p)
		pid = p.parent
	}
}

// mergeChildren returns the merge of p's children's current states.
func (g *Graph[S]) mergeChildren(p *Region[S]) S {
	parts := make([]S, len(p.children))
	for i, c := range p.children {
		parts[i] = g.regions[c].state
	}

	return g.ops.Merge(parts)
}

// remergeSubtree recomputes every internal state beneath rid bottom-up and
// returns rid's resulting state. Leaves are returned untouched.
func (g *Graph[S]) remergeSubtree(rid id.ID) S {
	r := g.regions[rid]
	if r.IsLeaf() {
		return r.state
	}
	parts := make([]S, len(r.children))
	for i, c := range r.children {
		parts[i] = g.remergeSubtree(c)
	}
	r.state = g.ops.Merge(parts)

	return r.state
}
