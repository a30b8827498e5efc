// Package lod implements the fixed-depth level-of-detail tree: a complete
// multiresolution view of a qdf space, built once at construction and
// never reshaped afterward. This file declares the Level record, the
// package sentinel errors, and the construction Options.
package lod

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qdf/id"
)

// Sentinel errors for lod operations.
var (
	// ErrLevelNotFound indicates an operation referenced a level id unknown
	// to the tree.
	ErrLevelNotFound = errors.New("lod: level not found")

	// ErrFieldNotFound indicates the referenced embedded field does not
	// exist, or the referenced level does not host one.
	ErrFieldNotFound = errors.New("lod: field not found")

	// ErrInvalidFanOut indicates a non-positive configured fan-out, or a
	// state Ops implementation returning a child-state count that violates
	// the configured fan-out.
	ErrInvalidFanOut = errors.New("lod: invalid fan-out")
)

// Level is one node of the tree: identity, optional parent, the node's
// depth, its sibling index among its generation, the caller payload, and
// the ordered child list. Nodes at the maximum depth have no children and
// instead host an embedded adaptive field (see Tree.Field).
//
// Level values returned by Tree queries are copies; mutating them does not
// touch the tree.
type Level[S any] struct {
	id       id.ID
	parent   id.ID // Nil for the root
	depth    int
	index    int // sibling index among this node's generation
	state    S
	children []id.ID
	field    id.ID // Nil unless this node is at the maximum depth
}

// ID returns the level's handle.
func (l Level[S]) ID() id.ID {
	return l.id
}

// Parent returns the parent handle and whether one exists.
func (l Level[S]) Parent() (id.ID, bool) {
	return l.parent, !l.parent.IsNil()
}

// Depth returns the node's distance from the root.
func (l Level[S]) Depth() int {
	return l.depth
}

// Index returns the node's sibling index, 0-based. The root has index 0.
func (l Level[S]) Index() int {
	return l.index
}

// State returns the level's current payload.
func (l Level[S]) State() S {
	return l.state
}

// Children returns a copy of the ordered child list; nil at maximum depth.
func (l Level[S]) Children() []id.ID {
	if l.children == nil {
		return nil
	}
	out := make([]id.ID, len(l.children))
	copy(out, l.children)

	return out
}

// IsDeepest reports whether the node sits at the tree's maximum depth and
// therefore hosts an embedded field.
func (l Level[S]) IsDeepest() bool {
	return len(l.children) == 0
}

// Option configures a Tree before construction.
// An invalid Option is recorded and surfaced as an error from New.
type Option func(*options)

type options struct {
	fanOut int // 0 = derive from dimensions
	err    error
}

// WithFanOut overrides the tree's fan-out, the number of children created
// per subdivision. The default is dimensions+2. The fan-out is a free
// configuration parameter: unlike the adaptive engine it is not tied to
// the dimensionality. k < 1 is rejected with ErrInvalidFanOut.
func WithFanOut(k int) Option {
	return func(o *options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: fan-out must be positive, got %d", ErrInvalidFanOut, k)

			return
		}
		o.fanOut = k
	}
}
