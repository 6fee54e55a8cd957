// Package memory provides an in-memory Store implementation with the same
// observable semantics as the mongo driver: identity uniqueness, atomic
// per-document updates, and store-managed timestamps. It backs unit tests
// and local development without a running document store.
package memory

import (
	"context"
	"sync"

	"github.com/openfolio/accounts/internal/accounts/domain"
	"github.com/openfolio/accounts/internal/accounts/store"
)

type Store struct {
	mu       sync.Mutex
	accounts map[string]domain.Account // keyed by identity
}

func NewStore() *Store {
	return &Store{accounts: make(map[string]domain.Account)}
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{s: s} }

// EnsureIndexes is a no-op: the map key is the uniqueness constraint.
func (s *Store) EnsureIndexes(ctx context.Context) error { return nil }

func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) Close(ctx context.Context) error { return nil }
