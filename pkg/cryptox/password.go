package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the caller does not
// configure one. Raising it slows hashing for attackers and us alike.
const DefaultCost = 10

// ErrPasswordMismatch reports that a password does not verify against a hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a salted bcrypt hash from a plaintext password.
// A cost of 0 (or anything below bcrypt's minimum) falls back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// bcrypt's comparison is constant-time over the derived key. Returns
// ErrPasswordMismatch when the password is wrong; any other error means the
// stored hash itself is malformed.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return fmt.Errorf("cryptox: failed to verify password: %w", err)
}
