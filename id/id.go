// Package id provides the opaque, globally unique handle used to address
// regions, levels, and fields throughout qdf.
//
// An ID is a 128-bit random value (UUIDv4 under the hood). IDs are
// comparable (usable as map keys), totally ordered via Compare/Less, and
// copy-by-value. Callers never derive meaning from an ID's bytes.
package id

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// ID is an opaque unique handle. The zero value is Nil.
type ID uuid.UUID

// Nil is the zero ID; no structure ever issues it.
var Nil = ID(uuid.Nil)

// New returns a fresh random ID.
// Complexity: O(1).
func New() ID {
	return ID(uuid.New())
}

// IsNil reports whether i is the zero ID.
func (i ID) IsNil() bool {
	return i == Nil
}

// String renders the ID in canonical UUID form.
func (i ID) String() string {
	return uuid.UUID(i).String()
}

// Compare orders two IDs bytewise, returning -1, 0, or +1.
// The order carries no spatial meaning; it exists so ID sets can be
// iterated deterministically.
func (i ID) Compare(other ID) int {
	return bytes.Compare(i[:], other[:])
}

// Less reports whether i sorts before other.
func (i ID) Less(other ID) bool {
	return i.Compare(other) < 0
}

// Sort orders ids in place by Compare. Used by callers that need a
// reproducible iteration order over an ID set.
func Sort(ids []ID) {
	sort.Slice(ids, func(a, b int) bool { return ids[a].Less(ids[b]) })
}
