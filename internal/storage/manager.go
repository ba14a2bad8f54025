// Package storage opens the backing store, ensures its schema, and vends
// the repositories bound to it. One Manager per process; pick the concrete
// constructor by configured backend.
package storage

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountkeeper/internal/users"
)

// Manager owns a database handle, its schema migrations, and the
// repositories built on top of it.
type Manager interface {
	// Conn exposes the raw handle, e.g. for dbx.WithTx. Nil for the
	// in-memory backend.
	Conn() *sql.DB

	// RunMigrations brings the schema up to date. Idempotent.
	RunMigrations(ctx context.Context) error

	// Users returns the user repository bound to this store.
	Users() users.Repository

	// Close releases the underlying handle.
	Close() error
}
