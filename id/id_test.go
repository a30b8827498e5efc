package id_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdf/id"
)

// TestNew_Uniqueness draws a batch of handles and expects no collisions.
func TestNew_Uniqueness(t *testing.T) {
	const n = 10_000
	seen := make(map[id.ID]struct{}, n)
	for i := 0; i < n; i++ {
		h := id.New()
		require.False(t, h.IsNil(), "New must never issue the zero handle")
		_, dup := seen[h]
		require.False(t, dup, "handles must be unique")
		seen[h] = struct{}{}
	}
}

// TestCompare_TotalOrder checks antisymmetry and consistency with Less.
func TestCompare_TotalOrder(t *testing.T) {
	a, b := id.New(), id.New()
	require.Equal(t, 0, a.Compare(a))
	require.Equal(t, -b.Compare(a), a.Compare(b))
	require.Equal(t, a.Compare(b) < 0, a.Less(b))
}

// TestSort orders ids ascending by Compare.
func TestSort(t *testing.T) {
	ids := make([]id.ID, 64)
	for i := range ids {
		ids[i] = id.New()
	}
	id.Sort(ids)
	for i := 1; i < len(ids); i++ {
		require.True(t, ids[i-1].Less(ids[i]) || ids[i-1] == ids[i])
	}
}

// TestString renders the canonical 36-character UUID form.
func TestString(t *testing.T) {
	require.Len(t, id.New().String(), 36)
	require.Equal(t, "00000000-0000-0000-0000-000000000000", id.Nil.String())
}
