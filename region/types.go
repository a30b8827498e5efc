// Package region implements the adaptive engine: a hierarchically
// refinable partition of an N-dimensional information space with a
// neighbor-consistent adjacency graph over its current resolution.
// This file declares the Region record and the package sentinel errors.
package region

import (
	"errors"

	"github.com/katalvlaran/qdf/id"
)

// Sentinel errors for region operations.
var (
	// ErrSpaceNotFound indicates an operation referenced an id unknown to
	// the structure.
	ErrSpaceNotFound = errors.New("region: space not found")

	// ErrNotSubdivided indicates an operation that requires an already
	// refined region was invoked on a leaf.
	ErrNotSubdivided = errors.New("region: space is not subdivided")

	// ErrInvalidFanOut indicates a state Ops implementation returned a
	// child-state count that violates the fixed fan-out invariant.
	ErrInvalidFanOut = errors.New("region: invalid fan-out")

	// ErrStateNotSeedable indicates the supplied Ops does not implement the
	// optional state.Seeder capability required to back-compute a root
	// state from a desired leaf state.
	ErrStateNotSeedable = errors.New("region: state ops does not implement Seeder")
)

// Region is a single node record: identity, optional parent, caller
// payload, and the ordered child list. A Region with no children is a
// leaf — the finest resolution currently materialized at its location.
//
// Region values returned by Graph queries are copies; mutating them does
// not touch the structure.
type Region[S any] struct {
	id       id.ID
	parent   id.ID // Nil for the root
	state    S
	children []id.ID
}

// ID returns the region's handle.
func (r Region[S]) ID() id.ID {
	return r.id
}

// Parent returns the parent handle and whether one exists.
// The parent link is set at creation and never changes.
func (r Region[S]) Parent() (id.ID, bool) {
	return r.parent, !r.parent.IsNil()
}

// State returns the region's current payload.
func (r Region[S]) State() S {
	return r.state
}

// Children returns a copy of the ordered child list; nil for a leaf.
func (r Region[S]) Children() []id.ID {
	if r.children == nil {
		return nil
	}
	out := make([]id.ID, len(r.children))
	copy(out, r.children)

	return out
}

// IsLeaf reports whether the region has no children.
func (r Region[S]) IsLeaf() bool {
	return len(r.children) == 0
}
