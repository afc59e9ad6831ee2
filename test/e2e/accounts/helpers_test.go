package accounts_test

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
)

/*
 * Common constants and helper functions for accounts service end-to-end tests.
 * This includes container setup, account operations, and assertions.
 */

const testImageName = "accounts-test:latest"

// imageErr is set when the service image could not be built; every test
// skips in that case.
var imageErr error

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Accounts Service Docker image...")

	if imageErr = buildDockerImage(); imageErr != nil {
		fmt.Fprintf(os.Stdout, " skipped: %v\n", imageErr)
	} else {
		fmt.Fprintf(os.Stdout, " done\n")
	}

	exitCode := m.Run()

	if imageErr == nil {
		fmt.Fprintf(os.Stdout, "Cleaning up Accounts Service Docker image...")
		cleanupDockerImage()
		fmt.Fprintf(os.Stdout, " done\n")
	}

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	if _, err := exec.LookPath("docker"); err != nil {
		return err
	}

	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/accounts/Dockerfile",
		"../../../")
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv runs the service with relaxed rate limits; most tests make many
// rapid requests from one address.
func baseEnv() map[string]string {
	return map[string]string{
		"ENV":                          "test",
		"LOG_LEVEL":                    "info",
		"LOG_FORMAT":                   "json",
		"BCRYPT_ROUNDS":                "4",
		"JWT_SECRET":                   "e2e-access-secret",
		"JWT_REFRESH_SECRET":           "e2e-refresh-secret",
		"RATE_LIMIT_MAX_REQUESTS":      "10000",
		"AUTH_RATE_LIMIT_MAX_REQUESTS": "10000",
	}
}

// setupAccountsContainer starts the service with env layered over baseEnv and
// returns a client for it. The container is removed when t finishes.
func setupAccountsContainer(t *testing.T, env map[string]string, opts ...testcontainers.ContainerCustomizer) *accountsdk.Client {
	t.Helper()
	if imageErr != nil {
		t.Skipf("accounts image unavailable: %v", imageErr)
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	merged := baseEnv()
	maps.Copy(merged, env)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          merged,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	}
	for _, opt := range opts {
		require.NoError(t, opt.Customize(&req))
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return accountsdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// setupPostgresBackedContainer starts postgres and the service on a shared
// network, with the service using the postgres driver.
func setupPostgresBackedContainer(t *testing.T) *accountsdk.Client {
	t.Helper()
	if imageErr != nil {
		t.Skipf("accounts image unavailable: %v", imageErr)
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	nw, err := network.New(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = nw.Remove(context.Background()) })

	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("accounts"),
		tcpostgres.WithUsername("accounts"),
		tcpostgres.WithPassword("accounts"),
		tcpostgres.BasicWaitStrategies(),
		network.WithNetwork([]string{"db"}, nw),
	)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err)

	return setupAccountsContainer(t, map[string]string{
		"DATABASE_DRIVER": "postgres",
		"DATABASE_URL":    "postgres://accounts:accounts@db:5432/accounts?sslmode=disable",
	}, network.WithNetwork([]string{"accounts"}, nw))
}

// mustRegister registers an account and returns a session for it.
func mustRegister(t *testing.T, client *accountsdk.Client, name, email, password string) (*accountsdk.AuthResponse, *accountsdk.Session) {
	t.Helper()

	res, err := client.Register(t.Context(), accountsdk.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	assertAuthResponse(t, res)

	return res, client.NewSessionFromTokens(res.AccessToken, res.RefreshToken)
}

// assertAuthResponse verifies an auth response has all required fields.
func assertAuthResponse(t *testing.T, res *accountsdk.AuthResponse) {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.User.ID, "User id should not be empty")
	require.True(t, res.User.IsActive, "New accounts should be active")
	require.NotEmpty(t, res.AccessToken, "Access token should not be empty")
	require.NotEmpty(t, res.RefreshToken, "Refresh token should not be empty")
}

// assertAPIError checks the status and error code of an SDK error.
func assertAPIError(t *testing.T, err error, status int, code string) *accountsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *accountsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Error())
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *accountsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
