package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 70)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, DefaultCost)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// bcrypt modular crypt format: $2a$<cost>$<salt+hash>
			require.True(t, strings.HasPrefix(hash, "$2"),
				"hash should be in bcrypt format")

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, DefaultCost, cost)
		})
	}
}

func TestHashPasswordZeroCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, DefaultCost, cost)
}

func TestHashPasswordSalted(t *testing.T) {
	// Same input twice must produce different hashes (random salt)
	a, err := HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("correct password verifies", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		err := VerifyPassword("wrong password", hash)
		require.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("malformed hash is an error, not a mismatch", func(t *testing.T) {
		err := VerifyPassword("anything", "not-a-bcrypt-hash")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	})
}
