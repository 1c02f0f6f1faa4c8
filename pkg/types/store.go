package types

import "errors"

// Filter field names accepted by Store.Find.
const (
	FieldNodeID      = "node_id"
	FieldParentID    = "parent_id"
	FieldAncestorIDs = "ancestor_ids"
	FieldName        = "name"
)

// In is a filter value matching documents whose field value is a member of
// the given set. An empty In matches nothing.
type In []string

// Contains is a filter value matching documents whose array field contains
// the given value.
type Contains string

// Store provides single-document reads and writes plus filtered
// multi-document reads over the node collection. Commit is an atomic upsert
// of one document; there is no multi-document transaction, and the tree
// engine is written not to need one.
type Store interface {
	// Get retrieves the node with the given id.
	// Returns ErrInvalidID if id is empty, ErrNotFound if no node exists.
	Get(id string) (*Node, error)

	// Commit creates or updates a node atomically. When NodeID is empty a
	// new UUID v7 is generated and set on the node. Returns the id used.
	Commit(n *Node) (string, error)

	// Find returns all nodes matching the filter. An empty filter returns
	// every node. Filter values are matched by equality, except In (field
	// value is a member of the set) and Contains (the value is a member of
	// the array field). Unknown fields or value types return
	// ErrInvalidFilter. Result order is unspecified.
	Find(filter map[string]any) ([]*Node, error)

	// Delete removes the node with the given id. Descendants are left
	// untouched; reparenting or repairing them is the caller's concern.
	// Returns ErrNotFound if no node exists with that id.
	Delete(id string) error
}

// Store operation errors.
var (
	ErrNotFound      = errors.New("node not found")
	ErrInvalidID     = errors.New("invalid node ID")
	ErrInvalidFilter = errors.New("invalid filter field or value type")
)

// Backend lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
