package tree

import (
	"fmt"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

// Save runs the full mutation lifecycle for one node: recompute its ancestor
// chain, commit it, and cascade to descendants when the chain changed.
// It returns the committed node's id.
//
// The cascade runs to completion before Save returns. Each descendant is one
// independent commit; there is no multi-document transaction. A store error
// partway through leaves already-updated descendants in their new, correct
// state and not-yet-reached descendants stale — the returned error names the
// node that failed so the caller can retry with ForceCascade on that subtree.
//
// Two concurrent Saves over overlapping subtrees are not coordinated; the
// loser's descendants may transiently hold chains reflecting a stale
// ancestor position until the next mutation or a ForceCascade touches them.
func Save(store types.Store, n *types.Node) (string, error) {
	dirty, err := Recompute(store, n)
	if err != nil {
		return "", err
	}

	id, err := store.Commit(n)
	if err != nil {
		return "", fmt.Errorf("commit node: %w", err)
	}

	if dirty {
		if err := Cascade(store, n); err != nil {
			return id, err
		}
	}
	return id, nil
}

// Cascade recomputes and commits the chain of every node below n whose
// chain is invalidated by n's new position. Children whose recompute
// reports no change stop the recursion along their branch; on a finite
// acyclic tree every branch bottoms out at such a generation or at a leaf.
//
// Call it only after n itself is durably committed — children copy n's
// chain via the store, not via the in-memory node.
//
// Sibling order within a generation is unspecified.
func Cascade(store types.Store, n *types.Node) error {
	visited := map[string]bool{n.NodeID: true}
	return cascade(store, n, visited, false)
}

// ForceCascade recomputes and commits every descendant of n
// unconditionally, ignoring the changed/unchanged cutoff that normal
// cascades stop at. It exists to repair chains corrupted outside the
// engine: corruption can sit below a node whose own chain is intact, so
// the walk must not stop early.
func ForceCascade(store types.Store, n *types.Node) error {
	visited := map[string]bool{n.NodeID: true}
	return cascade(store, n, visited, true)
}

// cascade walks one generation down from n. The visited set spans the whole
// walk: seeing a node twice means the parent graph has a cycle, which would
// otherwise recurse forever, so the walk aborts with ErrCycleDetected.
func cascade(store types.Store, n *types.Node, visited map[string]bool, force bool) error {
	children, err := ChildrenOf(store, n.NodeID)
	if err != nil {
		return fmt.Errorf("cascade at node %s: %w", n.NodeID, err)
	}

	for _, child := range children {
		if visited[child.NodeID] {
			return fmt.Errorf("%w: node %s revisited during cascade", ErrCycleDetected, child.NodeID)
		}
		visited[child.NodeID] = true

		dirty, err := Recompute(store, child)
		if err != nil {
			return fmt.Errorf("cascade at node %s: %w", child.NodeID, err)
		}
		if !dirty && !force {
			continue
		}
		if _, err := store.Commit(child); err != nil {
			return fmt.Errorf("cascade at node %s: %w", child.NodeID, err)
		}
		if err := cascade(store, child, visited, force); err != nil {
			return err
		}
	}
	return nil
}
