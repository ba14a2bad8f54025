package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// InMemoryRepository is a map-backed Repository. It backs the "memory"
// storage backend and keeps service tests free of real databases. Safe for
// concurrent use; the mutex stands in for the engine's uniqueness guarantee.
type InMemoryRepository struct {
	mu     sync.Mutex
	byMail map[string]*User
	nextID int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byMail: make(map[string]*User), nextID: 1}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byMail[user.Email]; ok {
		return nil, common.ErrorDuplicateEmail
	}

	user.ID = r.nextID
	r.nextID++

	stored := *user
	r.byMail[user.Email] = &stored

	return user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byMail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	u := *stored
	return &u, nil
}

func (r *InMemoryRepository) Activate(ctx context.Context, email string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byMail[email]
	if !ok {
		return common.ErrorNotFound
	}

	stored.IsActive = true
	stored.ActivationDate.Time = at
	stored.ActivationDate.Valid = true
	return nil
}

func (r *InMemoryRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byMail[email]
	if !ok {
		return common.ErrorNotFound
	}

	stored.PasswordHash = passwordHash
	return nil
}
