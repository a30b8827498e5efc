package lod

import (
	"fmt"

	"github.com/katalvlaran/qdf/id"
)

// SetLevelState replaces lid's payload with s and restores consistency in
// both directions: downward, s is subdivided through the sublevels and, at
// the deepest levels, imposed on the embedded fields' roots; upward, every
// ancestor re-merges its children's states.
func (t *Tree[S]) SetLevelState(lid id.ID, s S) error {
	l, ok := t.levels[lid]
	if !ok {
		return fmt.Errorf("%w: %s", ErrLevelNotFound, lid)
	}
	if err := t.imposeState(l, s); err != nil {
		return err
	}
	t.remergeAncestors(l.parent)

	return nil
}

// RecalculateState re-derives the states of the subtree rooted at lid
// bottom-up — deepest levels pull their embedded field's root state,
// internal levels merge their children — and then re-merges lid's
// ancestors. Call it after mutating a field directly through Field.
// Returns lid's recomputed state.
func (t *Tree[S]) RecalculateState(lid id.ID) (S, error) {
	l, ok := t.levels[lid]
	if !ok {
		var zero S

		return zero, fmt.Errorf("%w: %s", ErrLevelNotFound, lid)
	}
	s := t.pullState(l)
	t.remergeAncestors(l.parent)

	return s, nil
}

// imposeState writes s into l, pushes it into the embedded field at the
// deepest level, and subdivides it through sublevels otherwise.
func (t *Tree[S]) imposeState(l *Level[S], s S) error {
	l.state = s
	if len(l.children) == 0 {
		f := t.fields[l.field]

		return f.SetState(f.Root(), s)
	}
	parts := t.ops.Subdivide(s, t.fanOut)
	if len(parts) != t.fanOut {
		return fmt.Errorf("%w: Subdivide returned %d states, want %d", ErrInvalidFanOut, len(parts), t.fanOut)
	}
	for i, c := range l.children {
		if err := t.imposeState(t.levels[c], parts[i]); err != nil {
			return err
		}
	}

	return nil
}

// pullState recomputes l's subtree bottom-up and returns l's new state.
func (t *Tree[S]) pullState(l *Level[S]) S {
	if len(l.children) == 0 {
		f := t.fields[l.field]
		s, _ := f.State(f.Root())
		l.state = s

		return l.state
	}
	parts := make([]S, len(l.children))
	for i, c := range l.children {
		parts[i] = t.pullState(t.levels[c])
	}
	l.state = t.ops.Merge(parts)

	return l.state
}

// remergeAncestors walks the ancestor chain from pid to the root,
// recomputing each ancestor's state as the merge of its children's
// current states.
func (t *Tree[S]) remergeAncestors(pid id.ID) {
	for !pid.IsNil() {
		p := t.levels[pid]
		parts := make([]S, len(p.children))
		for i, c := range p.children {
			parts[i] = t.levels[c].state
		}
		p.state = t.ops.Merge(parts)
		pid = p.parent
	}
}
