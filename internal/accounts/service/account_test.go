package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openfolio/accounts/internal/accounts/domain"
	"github.com/openfolio/accounts/internal/accounts/store/drivers/memory"
)

// newTestService uses the minimum bcrypt cost so the suite stays fast.
func newTestService() *AccountService {
	return &AccountService{
		Store:      memory.NewStore(),
		BcryptCost: bcrypt.MinCost,
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))
	require.NoError(t, svc.Authenticate(ctx, "a@x.com", "pw1"))
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.ErrorIs(t, svc.Register(ctx, "", "pw"), ErrInvalidInput)
	require.ErrorIs(t, svc.Register(ctx, "a@x.com", ""), ErrInvalidInput)
}

func TestRegisterRejectsDuplicateIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	// A second registration always conflicts, regardless of the secret
	require.ErrorIs(t, svc.Register(ctx, "a@x.com", "pw2"), ErrAccountExists)
	require.ErrorIs(t, svc.Register(ctx, "a@x.com", "pw1"), ErrAccountExists)

	// The first secret still authenticates
	require.NoError(t, svc.Authenticate(ctx, "a@x.com", "pw1"))
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	wrongSecret := svc.Authenticate(ctx, "a@x.com", "wrong")
	unknownUser := svc.Authenticate(ctx, "nobody@x.com", "pw1")

	// Same sentinel, same message: account existence is not observable
	require.ErrorIs(t, wrongSecret, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.Equal(t, wrongSecret.Error(), unknownUser.Error())
}

func TestGetProfileDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	profile, err := svc.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", profile.Identity)
	require.Equal(t, domain.GenderUnspecified, profile.Gender)
	require.Equal(t, domain.GenderUnspecified, profile.AvatarType)
	require.False(t, profile.ProfileCompleted)
	require.Empty(t, profile.DisplayName)
	require.Empty(t, profile.FullName)
}

func TestGetProfileErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.GetProfile(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetProfile(ctx, "ghost@x.com")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestUpdateProfileSetsCompletedAndMirrorsAvatar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	profile, err := svc.UpdateProfile(ctx, "a@x.com", domain.ProfileUpdate{
		FullName: "Ann",
		Gender:   domain.GenderFemale,
	})
	require.NoError(t, err)
	require.Equal(t, "Ann", profile.FullName)
	require.Equal(t, domain.GenderFemale, profile.Gender)
	require.Equal(t, domain.GenderFemale, profile.AvatarType, "avatar type mirrors gender when not supplied")
	require.True(t, profile.ProfileCompleted)

	// Completed flag persists on read-back
	got, err := svc.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, got.ProfileCompleted)
}

func TestUpdateProfileIsFullOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	_, err := svc.UpdateProfile(ctx, "a@x.com", domain.ProfileUpdate{
		DisplayName: "ann",
		FullName:    "Ann Example",
		Company:     "Example Pty Ltd",
	})
	require.NoError(t, err)

	// Updating with a subset clears the omitted fields. This destructive
	// overwrite is intentional: callers must resend the entire profile.
	profile, err := svc.UpdateProfile(ctx, "a@x.com", domain.ProfileUpdate{
		FullName: "Ann Example",
	})
	require.NoError(t, err)
	require.Equal(t, "Ann Example", profile.FullName)
	require.Empty(t, profile.DisplayName)
	require.Empty(t, profile.Company)
	require.True(t, profile.ProfileCompleted)
}

func TestUpdateProfileRejectsUnknownGender(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	_, err := svc.UpdateProfile(ctx, "a@x.com", domain.ProfileUpdate{Gender: "other"})
	require.ErrorIs(t, err, ErrInvalidGender)
}

func TestUpdateProfileUnknownAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.UpdateProfile(ctx, "ghost@x.com", domain.ProfileUpdate{FullName: "Ghost"})
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "old-secret"))
	require.NoError(t, svc.ChangePassword(ctx, "a@x.com", "old-secret", "new-secret"))

	// Old secret invalidated, new one works
	require.ErrorIs(t, svc.Authenticate(ctx, "a@x.com", "old-secret"), ErrInvalidCredentials)
	require.NoError(t, svc.Authenticate(ctx, "a@x.com", "new-secret"))
}

func TestChangePasswordErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	require.ErrorIs(t, svc.ChangePassword(ctx, "", "pw1", "pw2"), ErrInvalidInput)
	require.ErrorIs(t, svc.ChangePassword(ctx, "a@x.com", "", "pw2"), ErrInvalidInput)
	require.ErrorIs(t, svc.ChangePassword(ctx, "a@x.com", "pw1", ""), ErrInvalidInput)
	require.ErrorIs(t, svc.ChangePassword(ctx, "ghost@x.com", "pw1", "pw2"), ErrAccountNotFound)
	require.ErrorIs(t, svc.ChangePassword(ctx, "a@x.com", "wrong", "pw2"), ErrInvalidCredentials)

	// Failed attempts must not touch the stored credential
	require.NoError(t, svc.Authenticate(ctx, "a@x.com", "pw1"))
}

func TestProfileNeverExposesHash(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw1"))

	account, err := svc.Store.Accounts().GetByIdentity(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, account.PasswordHash)

	profile, err := svc.GetProfile(ctx, "a@x.com")
	require.NoError(t, err)

	serialized, err := json.Marshal(profile)
	require.NoError(t, err)
	require.NotContains(t, string(serialized), account.PasswordHash)
	require.NotContains(t, string(serialized), "pw1")
}
