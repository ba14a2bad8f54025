package storage

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountkeeper/internal/users"
)

// MemoryManager keeps accounts in process memory, mostly for tests and
// quick experiments. Nothing survives a restart.
type MemoryManager struct {
	users users.Repository
}

func NewMemoryManager() (*MemoryManager, error) {
	return &MemoryManager{users: users.NewInMemoryRepository()}, nil
}

// Conn returns nil, the in-memory backend has no database handle.
func (m *MemoryManager) Conn() *sql.DB {
	return nil
}

func (m *MemoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryManager) Close() error {
	return nil
}
