package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	accountshttp "github.com/aussiebroadwan/accounts/internal/accounts/http"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type testServer struct {
	router   *accountshttp.Router
	store    *sqlite.Store
	tokens   *jwtx.TokenIssuer
	accounts *service.AccountService
}

type serverOption func(*accountshttp.RouterOptions, *accountshttp.Pinger)

func withAuthLimit(n int) serverOption {
	return func(o *accountshttp.RouterOptions, _ *accountshttp.Pinger) {
		o.AuthRateLimit = httpx.RateLimitConfig{RequestsPerWindow: n, Window: time.Minute}
	}
}

func withPinger(p accountshttp.Pinger) serverOption {
	return func(_ *accountshttp.RouterOptions, dst *accountshttp.Pinger) { *dst = p }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewTokenIssuer(jwtx.TokenIssuerOptions{
		AccessSecret:  []byte("http-access-secret"),
		RefreshSecret: []byte("http-refresh-secret"),
		Issuer:        "accounts-service",
	})
	require.NoError(t, err)

	hasher := cryptox.NewBcryptHasher(bcrypt.MinCost)

	ro := accountshttp.RouterOptions{
		APIPrefix:    "/api/v1",
		BuildVersion: "test",
		CORSOrigin:   "*",
	}
	var pinger accountshttp.Pinger = st
	for _, opt := range opts {
		opt(&ro, &pinger)
	}

	r := accountshttp.NewRouter(ro, tokens, pinger, slogx.Discard())
	r.AuthService = &service.AuthService{Store: st, Hasher: hasher, Tokens: tokens}
	r.AccountService = &service.AccountService{Store: st, Hasher: hasher}
	r.ApplyRoutes()

	return &testServer{router: r, store: st, tokens: tokens, accounts: r.AccountService}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) register(t *testing.T, name, email, password string) accountsdk.AuthResponse {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/v1/auth/register", accountsdk.RegisterRequest{
		Name: name, Email: email, Password: password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res accountsdk.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	got := decode[accountsdk.ErrorResponse](t, rec)
	require.Equal(t, accountsdk.ErrorResponse{Error: code, Message: message}, got)
}

var errDatabaseDown = errors.New("database is down")
