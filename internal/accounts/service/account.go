package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openfolio/accounts/internal/accounts/domain"
	"github.com/openfolio/accounts/internal/accounts/store"
	"github.com/openfolio/accounts/pkg/cryptox"
	"github.com/openfolio/accounts/pkg/idx"
	"github.com/openfolio/accounts/pkg/slogx"
)

var (
	ErrInvalidInput    = errors.New("missing required field")
	ErrInvalidGender   = errors.New("gender must be one of male, female, nonbinary, unspecified")
	ErrAccountExists   = errors.New("an account with that identity already exists")
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials covers both an unknown identity and a wrong
	// secret. The two cases must stay indistinguishable so callers cannot
	// probe which identities exist.
	ErrInvalidCredentials = errors.New("invalid identity or password")
)

// AccountService owns all business rules over the Account entity: identity
// uniqueness, credential verification, and the profile-field whitelist.
// It holds no mutable state of its own; every operation is a single
// request/response transaction against the store.
type AccountService struct {
	Store store.Store

	// BcryptCost is the hashing work factor. Zero means cryptox.DefaultCost.
	BcryptCost int
}

// Register creates a new account from an identity and a plaintext secret.
// The existence pre-check gives a friendly error in the common case; the
// store's unique index is the authoritative guard under concurrent signups.
func (s *AccountService) Register(ctx context.Context, identity, secret string) error {
	log := slogx.FromContext(ctx)

	if identity == "" || secret == "" {
		return ErrInvalidInput
	}

	_, err := s.Store.Accounts().GetByIdentity(ctx, identity)
	switch {
	case err == nil:
		return ErrAccountExists
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to check for existing account", slog.Any("error", err))
		return err
	}

	hash, err := cryptox.HashPassword(secret, s.BcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	account := domain.Account{
		ID:           idx.New().String(),
		Identity:     identity,
		PasswordHash: hash,
	}

	if err := s.Store.Accounts().Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race between the pre-check and the insert.
			return ErrAccountExists
		}
		log.Error("failed to create account",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("account registered", slog.String("account_id", account.ID))
	return nil
}

// Authenticate verifies an identity/secret pair against the stored hash.
// No token or session is issued; the caller manages client-side state.
func (s *AccountService) Authenticate(ctx context.Context, identity, secret string) error {
	log := slogx.FromContext(ctx)

	if identity == "" || secret == "" {
		return ErrInvalidInput
	}

	account, err := s.Store.Accounts().GetByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCredentials
		}
		log.Error("failed to load account", slog.Any("error", err))
		return err
	}

	if err := cryptox.VerifyPassword(secret, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return err
	}

	return nil
}

// GetProfile returns the sanitized profile projection for an identity.
func (s *AccountService) GetProfile(ctx context.Context, identity string) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	if identity == "" {
		return domain.Profile{}, ErrInvalidInput
	}

	account, err := s.Store.Accounts().GetByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrAccountNotFound
		}
		log.Error("failed to load account", slog.Any("error", err))
		return domain.Profile{}, err
	}

	return domain.ProfileOf(account), nil
}

// UpdateProfile overwrites every whitelisted profile field with the values
// in u and marks the profile completed. This is a full replace, not a merge:
// fields the caller omits are cleared, so clients must resend the entire
// profile on every update. An empty avatar type mirrors the gender.
func (s *AccountService) UpdateProfile(
	ctx context.Context,
	identity string,
	u domain.ProfileUpdate,
) (domain.Profile, error) {
	log := slogx.FromContext(ctx)

	if identity == "" {
		return domain.Profile{}, ErrInvalidInput
	}
	if !domain.ValidGender(u.Gender) {
		return domain.Profile{}, ErrInvalidGender
	}
	if u.AvatarType == "" {
		u.AvatarType = u.Gender
	}

	account, err := s.Store.Accounts().ReplaceProfile(ctx, identity, u)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrAccountNotFound
		}
		log.Error("failed to update profile", slog.Any("error", err))
		return domain.Profile{}, err
	}

	log.Info("profile updated", slog.String("account_id", account.ID))
	return domain.ProfileOf(account), nil
}

// ChangePassword replaces the stored credential hash after verifying the
// current secret. No hash history is kept and no session state exists to
// invalidate.
func (s *AccountService) ChangePassword(
	ctx context.Context,
	identity, currentSecret, newSecret string,
) error {
	log := slogx.FromContext(ctx)

	if identity == "" || currentSecret == "" || newSecret == "" {
		return ErrInvalidInput
	}

	account, err := s.Store.Accounts().GetByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		log.Error("failed to load account", slog.Any("error", err))
		return err
	}

	if err := cryptox.VerifyPassword(currentSecret, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return err
	}

	newHash, err := cryptox.HashPassword(newSecret, s.BcryptCost)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return err
	}

	if err := s.Store.Accounts().UpdatePasswordHash(ctx, identity, newHash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		log.Error("failed to update password hash",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("password changed", slog.String("account_id", account.ID))
	return nil
}
