package tree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

// memStore is an in-memory types.Store for engine tests. It stores copies,
// the way a real backend does, so an engine bug that relies on shared
// pointers instead of committed state shows up here.
type memStore struct {
	nodes   map[string]*types.Node
	nextID  int
	commits int    // total Commit calls, for cascade cost assertions
	failOn  string // Commit on this node id returns errCommitFailed
}

var errCommitFailed = errors.New("injected commit failure")

func newMemStore() *memStore {
	return &memStore{nodes: make(map[string]*types.Node)}
}

func (s *memStore) Get(id string) (*types.Node, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	n, ok := s.nodes[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return copyNode(n), nil
}

func (s *memStore) Commit(n *types.Node) (string, error) {
	if n.NodeID == s.failOn && s.failOn != "" {
		return "", errCommitFailed
	}
	if n.NodeID == "" {
		s.nextID++
		n.NodeID = fmt.Sprintf("n%d", s.nextID)
	}
	s.nodes[n.NodeID] = copyNode(n)
	s.commits++
	return n.NodeID, nil
}

func (s *memStore) Find(filter map[string]any) ([]*types.Node, error) {
	var out []*types.Node
	for _, n := range s.nodes {
		if matches(n, filter) {
			out = append(out, copyNode(n))
		}
	}
	return out, nil
}

func (s *memStore) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if _, ok := s.nodes[id]; !ok {
		return types.ErrNotFound
	}
	delete(s.nodes, id)
	return nil
}

func matches(n *types.Node, filter map[string]any) bool {
	for field, value := range filter {
		switch v := value.(type) {
		case string:
			if fieldValue(n, field) != v {
				return false
			}
		case types.In:
			if !slices.Contains(v, fieldValue(n, field)) {
				return false
			}
		case types.Contains:
			if field != types.FieldAncestorIDs || !slices.Contains(n.AncestorIDs, string(v)) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func fieldValue(n *types.Node, field string) string {
	switch field {
	case types.FieldNodeID:
		return n.NodeID
	case types.FieldParentID:
		return n.ParentID
	case types.FieldName:
		return n.Name
	default:
		return ""
	}
}

func copyNode(n *types.Node) *types.Node {
	c := *n
	c.AncestorIDs = slices.Clone(n.AncestorIDs)
	return &c
}

// seed commits a node directly, bypassing the engine, for building corrupt
// or preexisting states.
func (s *memStore) seed(n *types.Node) *types.Node {
	s.nodes[n.NodeID] = copyNode(n)
	return n
}
