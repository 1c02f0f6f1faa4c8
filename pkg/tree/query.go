package tree

import (
	"fmt"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

// ParentOf returns n's parent, or nil when n is a root.
func ParentOf(store types.Store, n *types.Node) (*types.Node, error) {
	if n.IsRoot() {
		return nil, nil
	}
	return store.Get(n.ParentID)
}

// ChildrenOf returns the nodes whose ParentID equals id.
func ChildrenOf(store types.Store, id string) ([]*types.Node, error) {
	return store.Find(map[string]any{types.FieldParentID: id})
}

// IsLeaf reports whether no node has n as its parent.
func IsLeaf(store types.Store, n *types.Node) (bool, error) {
	children, err := ChildrenOf(store, n.NodeID)
	if err != nil {
		return false, err
	}
	return len(children) == 0, nil
}

// Root returns the root of n's tree: the node at the head of n's ancestor
// chain, or n itself when n is a root. No store access for roots.
func Root(store types.Store, n *types.Node) (*types.Node, error) {
	if n.IsRoot() {
		return n, nil
	}
	return store.Get(n.RootID())
}

// Ancestors returns every node on n's ancestor chain in root-first order.
// One filtered read; the fetched rows are reordered to match the chain,
// since the store guarantees no result order.
func Ancestors(store types.Store, n *types.Node) ([]*types.Node, error) {
	if len(n.AncestorIDs) == 0 {
		return nil, nil
	}
	found, err := store.Find(map[string]any{types.FieldNodeID: types.In(n.AncestorIDs)})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*types.Node, len(found))
	for _, a := range found {
		byID[a.NodeID] = a
	}
	ordered := make([]*types.Node, 0, len(n.AncestorIDs))
	for _, id := range n.AncestorIDs {
		a, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("ancestor %s of node %s: %w", id, n.NodeID, types.ErrNotFound)
		}
		ordered = append(ordered, a)
	}
	return ordered, nil
}

// AncestorsAndSelf returns Ancestors with n appended.
func AncestorsAndSelf(store types.Store, n *types.Node) ([]*types.Node, error) {
	ancestors, err := Ancestors(store, n)
	if err != nil {
		return nil, err
	}
	return append(ancestors, n), nil
}

// Descendants returns every node whose ancestor chain contains n's id —
// the whole subtree below n, in no particular order.
func Descendants(store types.Store, n *types.Node) ([]*types.Node, error) {
	return store.Find(map[string]any{types.FieldAncestorIDs: types.Contains(n.NodeID)})
}

// DescendantsAndSelf returns n followed by Descendants.
func DescendantsAndSelf(store types.Store, n *types.Node) ([]*types.Node, error) {
	descendants, err := Descendants(store, n)
	if err != nil {
		return nil, err
	}
	return append([]*types.Node{n}, descendants...), nil
}

// SiblingsAndSelf returns every node sharing n's ParentID, including n.
// For a root that is every other root.
func SiblingsAndSelf(store types.Store, n *types.Node) ([]*types.Node, error) {
	return store.Find(map[string]any{types.FieldParentID: n.ParentID})
}

// Siblings returns SiblingsAndSelf with n removed.
func Siblings(store types.Store, n *types.Node) ([]*types.Node, error) {
	all, err := SiblingsAndSelf(store, n)
	if err != nil {
		return nil, err
	}
	siblings := make([]*types.Node, 0, len(all))
	for _, s := range all {
		if s.NodeID != n.NodeID {
			siblings = append(siblings, s)
		}
	}
	return siblings, nil
}
