package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

// nodeColumns is the column list shared by every node SELECT.
const nodeColumns = "node_id, parent_id, ancestor_ids, name, payload, created_at, updated_at"

// newUUID generates a UUID v7 string for node ids.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Get retrieves a node by id.
// Returns ErrInvalidID if id is empty, ErrNotFound if no row exists.
func (b *Backend) Get(id string) (*types.Node, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	row := b.db.QueryRow("SELECT "+nodeColumns+" FROM nodes WHERE node_id = ?", id)
	n, err := hydrateNode(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying node %s: %w", id, err)
	}
	return n, nil
}

// Commit upserts a node as one statement. When NodeID is empty a UUID v7 is
// generated and set on the node; CreatedAt is set on first commit and
// UpdatedAt on every commit. Returns the id used.
func (b *Backend) Commit(n *types.Node) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	now := time.Now().UTC()
	if n.NodeID == "" {
		n.NodeID = newUUID()
		n.CreatedAt = now
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now

	ancestors, err := json.Marshal(ancestorsOrEmpty(n.AncestorIDs))
	if err != nil {
		return "", fmt.Errorf("encoding ancestor_ids: %w", err)
	}
	payload, err := json.Marshal(payloadOrEmpty(n.Payload))
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}

	_, err = b.db.Exec(`
		INSERT INTO nodes (node_id, parent_id, ancestor_ids, name, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (node_id) DO UPDATE SET
			parent_id    = excluded.parent_id,
			ancestor_ids = excluded.ancestor_ids,
			name         = excluded.name,
			payload      = excluded.payload,
			updated_at   = excluded.updated_at`,
		n.NodeID, n.ParentID, string(ancestors), n.Name, string(payload),
		n.CreatedAt.Format(time.RFC3339Nano), n.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("committing node %s: %w", n.NodeID, err)
	}
	return n.NodeID, nil
}

// Delete removes a node by id. Descendant rows are untouched.
// Returns ErrInvalidID if id is empty, ErrNotFound if no row exists.
func (b *Backend) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	res, err := b.db.Exec("DELETE FROM nodes WHERE node_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting node %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Find returns nodes matching the filter. An empty filter matches all.
func (b *Backend) Find(filter map[string]any) ([]*types.Node, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	where, args, err := compileFilter(filter)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + nodeColumns + " FROM nodes"
	if where != "" {
		query += " WHERE " + where
	}

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	var nodes []*types.Node
	for rows.Next() {
		n, err := hydrateNode(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}
	return nodes, nil
}

// filterableColumns maps filter field names to their SQL columns. Only these
// fields may appear in a filter.
var filterableColumns = map[string]string{
	types.FieldNodeID:      "node_id",
	types.FieldParentID:    "parent_id",
	types.FieldAncestorIDs: "ancestor_ids",
	types.FieldName:        "name",
}

// compileFilter translates a filter map into a WHERE clause and arguments.
// Equality becomes "col = ?", types.In becomes "col IN (...)" (an empty set
// matches nothing), and types.Contains becomes an EXISTS over json_each of
// the array column.
func compileFilter(filter map[string]any) (string, []any, error) {
	var clauses []string
	var args []any

	for field, value := range filter {
		col, ok := filterableColumns[field]
		if !ok {
			return "", nil, fmt.Errorf("%w: field %q", types.ErrInvalidFilter, field)
		}

		switch v := value.(type) {
		case string:
			clauses = append(clauses, col+" = ?")
			args = append(args, v)
		case types.In:
			if len(v) == 0 {
				clauses = append(clauses, "1 = 0")
				continue
			}
			placeholders := strings.Repeat("?, ", len(v)-1) + "?"
			clauses = append(clauses, col+" IN ("+placeholders+")")
			for _, member := range v {
				args = append(args, member)
			}
		case types.Contains:
			if field != types.FieldAncestorIDs {
				return "", nil, fmt.Errorf("%w: Contains on non-array field %q", types.ErrInvalidFilter, field)
			}
			clauses = append(clauses, "EXISTS (SELECT 1 FROM json_each(nodes."+col+") WHERE json_each.value = ?)")
			args = append(args, string(v))
		default:
			return "", nil, fmt.Errorf("%w: field %q has type %T", types.ErrInvalidFilter, field, value)
		}
	}

	return strings.Join(clauses, " AND "), args, nil
}

// hydrateNode converts one row into a *types.Node. scan is row.Scan or
// rows.Scan, so point lookups and filtered queries share the decoding.
func hydrateNode(scan func(dest ...any) error) (*types.Node, error) {
	var n types.Node
	var ancestors, payload, createdAt, updatedAt string
	if err := scan(&n.NodeID, &n.ParentID, &ancestors, &n.Name, &payload, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ancestors), &n.AncestorIDs); err != nil {
		return nil, fmt.Errorf("parsing ancestor_ids: %w", err)
	}
	if len(n.AncestorIDs) == 0 {
		n.AncestorIDs = nil
	}
	if err := json.Unmarshal([]byte(payload), &n.Payload); err != nil {
		return nil, fmt.Errorf("parsing payload: %w", err)
	}

	var err error
	n.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	n.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &n, nil
}

// ancestorsOrEmpty keeps a nil chain encoding as [] rather than null.
func ancestorsOrEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// payloadOrEmpty keeps a nil payload encoding as {} rather than null.
func payloadOrEmpty(p map[string]any) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return p
}
