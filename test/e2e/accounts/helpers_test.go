package accounts_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/openfolio/accounts/pkg/accountsdk"
)

/*
 * Common constants and helper functions for accounts service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName  = "openfolio-accounts-test:latest"
	mongoImageName = "mongo:7"

	testIdentity = "alice@example.com"
	testSecret   = "Hunter22!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Accounts Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Accounts Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/accounts/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAccountsContainer starts a mongo container and the accounts service on
// a shared network and returns the service base URL.
func setupAccountsContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	net, err := network.New(ctx)
	require.NoError(t, err)

	mongoReq := testcontainers.ContainerRequest{
		Image:    mongoImageName,
		Networks: []string{net.Name},
		NetworkAliases: map[string][]string{
			net.Name: {"mongo"},
		},
		WaitingFor: wait.ForListeningPort("27017/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: mongoReq,
		Started:          true,
	})
	require.NoError(t, err)

	serviceReq := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"3000/tcp"},
		Networks:     []string{net.Name},
		Env: map[string]string{
			"ACCOUNTS_MONGO_URI": "mongodb://mongo:27017",
			"ACCOUNTS_MONGO_DB":  "accounts_e2e",
			"ENV":                "test",
			"LOG_LEVEL":          "info",
			"LOG_FORMAT":         "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("3000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	serviceContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: serviceReq,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := serviceContainer.MappedPort(ctx, "3000")
	require.NoError(t, err)

	host, err := serviceContainer.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := serviceContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate service container: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
		if err := net.Remove(ctx); err != nil {
			t.Logf("failed to remove network: %v", err)
		}
	}

	return baseURL, cleanup
}

// signupAccount registers an account and fails the test on any error.
func signupAccount(t *testing.T, client *accountsdk.Client, identity, secret string) {
	t.Helper()
	require.NoError(t, client.Signup(context.Background(), identity, secret),
		"Signup should succeed")
}

// assertLoginSucceeds verifies the identity/secret pair authenticates.
func assertLoginSucceeds(t *testing.T, client *accountsdk.Client, identity, secret string) {
	t.Helper()

	resp, err := client.Login(context.Background(), identity, secret)
	require.NoError(t, err)
	require.True(t, resp.Success, "Login with valid credentials should succeed")
}

// assertLoginSoftFails verifies the login is rejected without a transport
// error and returns the failure message.
func assertLoginSoftFails(t *testing.T, client *accountsdk.Client, identity, secret string) string {
	t.Helper()

	resp, err := client.Login(context.Background(), identity, secret)
	require.NoError(t, err, "Invalid credentials should not be a transport error")
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Message)
	return resp.Message
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *accountsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
