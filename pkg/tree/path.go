package tree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

// Engine errors.
var (
	// ErrDanglingParent means a node's ParentID references a node that does
	// not exist in the store. Recompute returns it before anything is
	// mutated, so the triggering commit never happens.
	ErrDanglingParent = errors.New("parent node does not exist")

	// ErrCycleDetected means a mutation would make a node its own ancestor,
	// or a cascade revisited a node it already updated.
	ErrCycleDetected = errors.New("cycle in parent chain")
)

// Recompute rebuilds n's ancestor chain from its current ParentID and
// reports whether the chain changed (the caller must cascade when it did).
//
// A root gets an empty chain. Otherwise the chain becomes the parent's
// chain plus the parent's id, read from the store. The node is only
// mutated in memory; the caller commits it, so the recomputed chain lands
// in the same single-document write as the parent change that triggered it.
//
// Idempotent: a second call with no intervening parent change reports
// no change.
func Recompute(store types.Store, n *types.Node) (bool, error) {
	if n.ParentID == "" {
		if len(n.AncestorIDs) == 0 {
			return false, nil
		}
		n.AncestorIDs = nil
		return true, nil
	}

	parent, err := store.Get(n.ParentID)
	if errors.Is(err, types.ErrNotFound) {
		return false, fmt.Errorf("%w: %s", ErrDanglingParent, n.ParentID)
	}
	if err != nil {
		return false, fmt.Errorf("fetch parent %s: %w", n.ParentID, err)
	}

	if wouldCycle(parent, n) {
		return false, fmt.Errorf("%w: node %s under parent %s", ErrCycleDetected, n.NodeID, parent.NodeID)
	}

	chain := append(parent.CloneAncestorIDs(), parent.NodeID)
	if slices.Equal(chain, n.AncestorIDs) {
		return false, nil
	}
	n.AncestorIDs = chain
	return true, nil
}

// wouldCycle reports whether putting n under parent would make n its own
// ancestor. The check reads only the two nodes: the parent is n itself, or
// n already sits on the parent's chain. A stale chain can miss a cycle
// introduced by a concurrent conflicting write; that race is documented on
// Save and not defended here.
func wouldCycle(parent, n *types.Node) bool {
	if n.NodeID == "" {
		return false
	}
	if parent.NodeID == n.NodeID {
		return true
	}
	return n.IsAncestorOf(parent)
}
