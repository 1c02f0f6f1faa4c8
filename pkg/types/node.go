package types

import (
	"slices"
	"time"
)

// Node is one document in the hierarchy. ParentID points at another node's
// NodeID; the empty string marks a root. AncestorIDs is the denormalized
// root-first chain of ancestor ids, excluding the node's own id — empty
// exactly when the node is a root.
//
// The ParentID chain is ground truth. AncestorIDs is a derived index
// maintained by the tree engine (package tree) and must not be written by
// anything else; when the two disagree, ParentID wins.
type Node struct {
	NodeID      string         // UUID v7, assigned by the store on first commit.
	ParentID    string         // Parent node id; empty for roots.
	AncestorIDs []string       // Root-first ancestor chain, excluding NodeID.
	Name        string         // Human-readable name.
	Payload     map[string]any // Caller-owned document body; opaque to the engine.
	CreatedAt   time.Time      // Timestamp of creation.
	UpdatedAt   time.Time      // Timestamp of last commit.
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}

// Depth returns the number of ancestors above the node. Roots have depth 0.
func (n *Node) Depth() int {
	return len(n.AncestorIDs)
}

// IsAncestorOf reports whether this node's id appears in other's ancestor
// chain. Uses only fields already resident on the two nodes.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	return slices.Contains(other.AncestorIDs, n.NodeID)
}

// IsDescendantOf reports whether other's id appears in this node's ancestor
// chain.
func (n *Node) IsDescendantOf(other *Node) bool {
	if other == nil {
		return false
	}
	return slices.Contains(n.AncestorIDs, other.NodeID)
}

// RootID returns the id of the node's tree root: the first ancestor, or the
// node's own id when it is a root.
func (n *Node) RootID() string {
	if len(n.AncestorIDs) == 0 {
		return n.NodeID
	}
	return n.AncestorIDs[0]
}

// CloneAncestorIDs returns an independent copy of the ancestor chain.
// Returns nil for roots.
func (n *Node) CloneAncestorIDs() []string {
	return slices.Clone(n.AncestorIDs)
}
