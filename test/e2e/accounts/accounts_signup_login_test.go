package accounts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openfolio/accounts/pkg/accountsdk"
)

// TestSignupAndLogin tests the basic account lifecycle:
// 1. Register a new account
// 2. Login with the same credentials
// 3. Reject a duplicate registration with 409
func TestSignupAndLogin(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	signupAccount(t, client, testIdentity, testSecret)
	t.Logf("Signup successful")

	assertLoginSucceeds(t, client, testIdentity, testSecret)
	t.Logf("Login successful")

	err := client.Signup(context.Background(), testIdentity, "some-other-secret")
	require.Error(t, err, "Duplicate identity should be rejected")
	require.True(t, accountsdk.IsStatus(err, 409), "Duplicate signup should be a 409, got: %v", err)
}

// TestLoginFailuresAreIndistinguishable verifies a wrong secret and an
// unknown identity produce the exact same soft failure.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	signupAccount(t, client, testIdentity, testSecret)

	wrongSecret := assertLoginSoftFails(t, client, testIdentity, "not-the-secret")
	unknownIdentity := assertLoginSoftFails(t, client, "nobody@example.com", testSecret)

	require.Equal(t, wrongSecret, unknownIdentity,
		"Failure message must not reveal whether the identity exists")
}

// TestSignupValidation verifies missing fields are rejected with 400.
func TestSignupValidation(t *testing.T) {
	baseURL, cleanup := setupAccountsContainer(t)
	defer cleanup()

	client := accountsdk.NewClient(baseURL)

	err := client.Signup(context.Background(), "", testSecret)
	require.True(t, accountsdk.IsStatus(err, 400), "Missing identity should be a 400, got: %v", err)

	err = client.Signup(context.Background(), testIdentity, "")
	require.True(t, accountsdk.IsStatus(err, 400), "Missing secret should be a 400, got: %v", err)
}
