package service

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// spyHasher is a reversible stand-in for bcrypt that counts its calls.
type spyHasher struct {
	hashes   atomic.Int32
	compares atomic.Int32
}

func (h *spyHasher) Hash(plaintext string) (string, error) {
	h.hashes.Add(1)
	if len(plaintext) > cryptox.MaxPasswordBytes {
		return "", cryptox.ErrPasswordTooLong
	}
	return "spy:" + plaintext, nil
}

func (h *spyHasher) Compare(plaintext, digest string) bool {
	h.compares.Add(1)
	return digest == "spy:"+plaintext
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)}
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTokens(t *testing.T, clock *testClock) *jwtx.TokenIssuer {
	t.Helper()
	tokens, err := jwtx.NewTokenIssuer(jwtx.TokenIssuerOptions{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		Issuer:        "accounts-service",
		Now:           clock.Now,
	})
	require.NoError(t, err)
	return tokens
}

type fixture struct {
	store    *sqlite.Store
	hasher   *spyHasher
	clock    *testClock
	tokens   *jwtx.TokenIssuer
	auth     *AuthService
	accounts *AccountService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:  newTestStore(t),
		hasher: &spyHasher{},
		clock:  newClock(),
	}
	f.tokens = newTokens(t, f.clock)
	f.auth = &AuthService{Store: f.store, Hasher: f.hasher, Tokens: f.tokens, Now: f.clock.Now}
	f.accounts = &AccountService{Store: f.store, Hasher: f.hasher, Now: f.clock.Now}
	return f
}
