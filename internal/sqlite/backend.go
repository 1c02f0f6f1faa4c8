// Package sqlite implements the SQLite storage backend for Arbor. Nodes are
// stored as rows of JSON-bearing TEXT columns in a single table; the three
// filter predicate forms compile to SQL, with array containment served by
// json_each over the ancestor_ids column.
package sqlite

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/arbor/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// databaseFileName is the SQLite file created inside DataDir.
const databaseFileName = "arbor.db"

// Backend implements types.Store on a SQLite database. All operations are
// serialized behind one RWMutex; each Commit is a single upsert statement,
// which is the single-document atomicity the tree engine assumes.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the database under config.DataDir and applies
// the schema. The database file persists across attach/detach cycles.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFileName))
	if err != nil {
		return err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database connection. After Detach, all operations
// return ErrStoreDetached. Idempotent: repeated calls succeed.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}
