package memory

import (
	"context"
	"time"

	"github.com/openfolio/accounts/internal/accounts/domain"
	"github.com/openfolio/accounts/internal/accounts/store"
)

type accountsRepo struct {
	s *Store
}

func (r *accountsRepo) GetByIdentity(ctx context.Context, identity string) (domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[identity]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (r *accountsRepo) Create(ctx context.Context, a domain.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.accounts[a.Identity]; exists {
		return store.ErrAlreadyExists
	}

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.s.accounts[a.Identity] = a
	return nil
}

func (r *accountsRepo) ReplaceProfile(
	ctx context.Context,
	identity string,
	u domain.ProfileUpdate,
) (domain.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[identity]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}

	a.DisplayName = u.DisplayName
	a.FullName = u.FullName
	a.DateOfBirth = u.DateOfBirth
	a.Gender = u.Gender
	a.AvatarType = u.AvatarType
	a.Company = u.Company
	a.University = u.University
	a.Profession = u.Profession
	a.ProfileCompleted = true
	a.UpdatedAt = time.Now().UTC()

	r.s.accounts[identity] = a
	return a, nil
}

func (r *accountsRepo) UpdatePasswordHash(ctx context.Context, identity, newHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.accounts[identity]
	if !ok {
		return store.ErrNotFound
	}

	a.PasswordHash = newHash
	a.UpdatedAt = time.Now().UTC()
	r.s.accounts[identity] = a
	return nil
}
