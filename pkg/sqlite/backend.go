// Package sqlite provides the public constructor for the SQLite Arbor
// backend, keeping the implementation internal.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".arbor-db",
//	})
//	defer store.Detach()
package sqlite

import (
	"github.com/mesh-intelligence/arbor/internal/sqlite"
	"github.com/mesh-intelligence/arbor/pkg/types"
)

// Store is the attachable store interface the SQLite backend satisfies:
// the document-store contract plus the Attach/Detach lifecycle.
type Store interface {
	types.Store
	Attach(config types.Config) error
	Detach() error
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() Store {
	return sqlite.NewBackend()
}
