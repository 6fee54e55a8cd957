package store

import (
	"context"
	"errors"

	"github.com/openfolio/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (mongo for real
// deployments, memory for tests) implement this. The service layer never sees
// driver types; identity uniqueness and per-document atomic updates are the
// driver's responsibility.
type Store interface {
	Accounts() Accounts

	// EnsureIndexes creates the unique index on identity. Called once at
	// startup; it is the authoritative guard against duplicate registration
	// under concurrent requests.
	EnsureIndexes(ctx context.Context) error

	// Ping verifies the store connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

type Accounts interface {
	// GetByIdentity returns the account whose identity matches exactly.
	GetByIdentity(ctx context.Context, identity string) (domain.Account, error)

	// Create inserts a new account (id is provided by the service via ULID).
	// The driver stamps CreatedAt/UpdatedAt and returns ErrAlreadyExists when
	// the identity is already taken.
	Create(ctx context.Context, a domain.Account) error

	// ReplaceProfile overwrites every whitelisted profile field with the
	// values in u, marks the profile completed, bumps UpdatedAt, and returns
	// the updated document. The overwrite is applied atomically per document.
	ReplaceProfile(ctx context.Context, identity string, u domain.ProfileUpdate) (domain.Account, error)

	// UpdatePasswordHash replaces the stored credential hash and bumps
	// UpdatedAt. No other field is touched.
	UpdatePasswordHash(ctx context.Context, identity string, newHash string) error
}
