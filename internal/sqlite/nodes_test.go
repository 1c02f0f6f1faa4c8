package sqlite

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

func TestCommitGeneratesUUID(t *testing.T) {
	b := setupBackend(t)

	n := &types.Node{Name: "fresh"}
	id, err := b.Commit(n)
	require.NoError(t, err)
	assert.Equal(t, id, n.NodeID, "generated id is set on the node")

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.False(t, n.CreatedAt.IsZero())
	assert.False(t, n.UpdatedAt.IsZero())
}

func TestGetRoundTrip(t *testing.T) {
	b := setupBackend(t)

	in := &types.Node{
		Name:        "node",
		ParentID:    "p1",
		AncestorIDs: []string{"r1", "p1"},
		Payload:     map[string]any{"status": "draft", "weight": float64(3)},
	}
	id, err := b.Commit(in)
	require.NoError(t, err)

	out, err := b.Get(id)
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.ParentID, out.ParentID)
	assert.Equal(t, in.AncestorIDs, out.AncestorIDs)
	assert.Equal(t, in.Payload, out.Payload)
	assert.Equal(t, in.CreatedAt.Unix(), out.CreatedAt.Unix())
}

func TestGetErrors(t *testing.T) {
	b := setupBackend(t)

	_, err := b.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	_, err = b.Get(newUUID())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCommitUpsert(t *testing.T) {
	b := setupBackend(t)

	n := &types.Node{Name: "before"}
	id, err := b.Commit(n)
	require.NoError(t, err)

	n.Name = "after"
	n.ParentID = "p1"
	n.AncestorIDs = []string{"p1"}
	id2, err := b.Commit(n)
	require.NoError(t, err)
	assert.Equal(t, id, id2, "upsert keeps the id")

	out, err := b.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "after", out.Name)
	assert.Equal(t, []string{"p1"}, out.AncestorIDs)

	all, err := b.Find(nil)
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not create a second row")
}

func TestDelete(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Commit(&types.Node{Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, b.Delete(id))
	_, err = b.Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, b.Delete(id), types.ErrNotFound)
	assert.ErrorIs(t, b.Delete(""), types.ErrInvalidID)
}

func TestFindFilters(t *testing.T) {
	b := setupBackend(t)

	root := &types.Node{Name: "root"}
	_, err := b.Commit(root)
	require.NoError(t, err)
	childA := &types.Node{Name: "a", ParentID: root.NodeID, AncestorIDs: []string{root.NodeID}}
	_, err = b.Commit(childA)
	require.NoError(t, err)
	childB := &types.Node{Name: "b", ParentID: root.NodeID, AncestorIDs: []string{root.NodeID}}
	_, err = b.Commit(childB)
	require.NoError(t, err)
	grand := &types.Node{Name: "g", ParentID: childA.NodeID, AncestorIDs: []string{root.NodeID, childA.NodeID}}
	_, err = b.Commit(grand)
	require.NoError(t, err)

	t.Run("empty filter returns everything", func(t *testing.T) {
		all, err := b.Find(nil)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("equality on parent_id", func(t *testing.T) {
		got, err := b.Find(map[string]any{types.FieldParentID: root.NodeID})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.ElementsMatch(t,
			[]string{childA.NodeID, childB.NodeID},
			[]string{got[0].NodeID, got[1].NodeID})
	})

	t.Run("In matches id membership", func(t *testing.T) {
		got, err := b.Find(map[string]any{
			types.FieldNodeID: types.In{root.NodeID, grand.NodeID},
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty In matches nothing", func(t *testing.T) {
		got, err := b.Find(map[string]any{types.FieldNodeID: types.In{}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Contains matches array membership", func(t *testing.T) {
		got, err := b.Find(map[string]any{
			types.FieldAncestorIDs: types.Contains(childA.NodeID),
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, grand.NodeID, got[0].NodeID)
	})

	t.Run("clauses are ANDed", func(t *testing.T) {
		got, err := b.Find(map[string]any{
			types.FieldParentID: root.NodeID,
			types.FieldName:     "b",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, childB.NodeID, got[0].NodeID)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := b.Find(map[string]any{"payload": "x"})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})

	t.Run("unsupported value type is rejected", func(t *testing.T) {
		_, err := b.Find(map[string]any{types.FieldName: 42})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})

	t.Run("Contains is only valid on the array field", func(t *testing.T) {
		_, err := b.Find(map[string]any{types.FieldName: types.Contains("x")})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})
}

func TestEmptyChainStoredAsEmptyArray(t *testing.T) {
	b := setupBackend(t)

	id, err := b.Commit(&types.Node{Name: "root"})
	require.NoError(t, err)

	out, err := b.Get(id)
	require.NoError(t, err)
	assert.Nil(t, out.AncestorIDs)

	// A Contains query over roots must not error on the empty array.
	got, err := b.Find(map[string]any{types.FieldAncestorIDs: types.Contains(id)})
	require.NoError(t, err)
	assert.Empty(t, got)
}
