package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

func TestRecomputeRoot(t *testing.T) {
	store := newMemStore()

	t.Run("fresh root gets empty chain without store access", func(t *testing.T) {
		n := &types.Node{Name: "root"}
		dirty, err := Recompute(store, n)
		require.NoError(t, err)
		assert.False(t, dirty)
		assert.Empty(t, n.AncestorIDs)
	})

	t.Run("demoting a child to root clears the chain and reports dirty", func(t *testing.T) {
		n := &types.Node{NodeID: "c", AncestorIDs: []string{"r"}}
		dirty, err := Recompute(store, n)
		require.NoError(t, err)
		assert.True(t, dirty)
		assert.Empty(t, n.AncestorIDs)
	})
}

func TestRecomputeChild(t *testing.T) {
	store := newMemStore()
	store.seed(&types.Node{NodeID: "r"})
	store.seed(&types.Node{NodeID: "c", ParentID: "r", AncestorIDs: []string{"r"}})

	n := &types.Node{NodeID: "g", ParentID: "c"}
	dirty, err := Recompute(store, n)
	require.NoError(t, err)
	assert.True(t, dirty)
	assert.Equal(t, []string{"r", "c"}, n.AncestorIDs)
}

func TestRecomputeIdempotent(t *testing.T) {
	store := newMemStore()
	store.seed(&types.Node{NodeID: "r"})

	n := &types.Node{NodeID: "c", ParentID: "r"}
	dirty, err := Recompute(store, n)
	require.NoError(t, err)
	require.True(t, dirty)

	// No parent change between calls: no mutation, no cascade signal.
	dirty, err = Recompute(store, n)
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.Equal(t, []string{"r"}, n.AncestorIDs)
}

func TestRecomputeDanglingParent(t *testing.T) {
	store := newMemStore()

	n := &types.Node{NodeID: "c", ParentID: "ghost", AncestorIDs: []string{"old"}}
	dirty, err := Recompute(store, n)
	require.ErrorIs(t, err, ErrDanglingParent)
	assert.False(t, dirty)
	// The chain must be untouched when recomputation fails.
	assert.Equal(t, []string{"old"}, n.AncestorIDs)
}

func TestRecomputeCycleDetected(t *testing.T) {
	store := newMemStore()
	store.seed(&types.Node{NodeID: "r"})
	store.seed(&types.Node{NodeID: "c", ParentID: "r", AncestorIDs: []string{"r"}})
	store.seed(&types.Node{NodeID: "g", ParentID: "c", AncestorIDs: []string{"r", "c"}})

	t.Run("parent under own descendant", func(t *testing.T) {
		r, err := store.Get("r")
		require.NoError(t, err)
		r.ParentID = "g"
		dirty, err := Recompute(store, r)
		require.ErrorIs(t, err, ErrCycleDetected)
		assert.False(t, dirty)
		assert.Empty(t, r.AncestorIDs)
	})

	t.Run("node as its own parent", func(t *testing.T) {
		c, err := store.Get("c")
		require.NoError(t, err)
		c.ParentID = "c"
		_, err = Recompute(store, c)
		require.ErrorIs(t, err, ErrCycleDetected)
	})
}
