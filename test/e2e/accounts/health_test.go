package accounts_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies both probes on a fresh sqlite-backed service.
func TestHealthEndpoints(t *testing.T) {
	client := setupAccountsContainer(t, nil)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
	require.NotEmpty(t, health.Version)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
