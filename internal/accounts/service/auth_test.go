package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, f *fixture, name, email, password string) AuthResult {
	t.Helper()
	res, err := f.auth.Register(context.Background(), RegisterInput{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	return res
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates active account and issues tokens", func(t *testing.T) {
		f := newFixture(t)
		res := register(t, f, "  Ada Lovelace ", "ada@example.com", "s3cret!")

		require.NotEmpty(t, res.Account.ID)
		require.Equal(t, "Ada Lovelace", res.Account.Name)
		require.Equal(t, "ada@example.com", res.Account.Email)
		require.True(t, res.Account.IsActive)
		require.Equal(t, f.clock.now, res.Account.CreatedAt)
		require.Equal(t, res.Account.CreatedAt, res.Account.UpdatedAt)

		claims, err := f.tokens.VerifyAccess(res.AccessToken)
		require.NoError(t, err)
		require.Equal(t, res.Account.ID, claims.Subject)
		require.Equal(t, "ada@example.com", claims.Email)

		claims, err = f.tokens.VerifyRefresh(res.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, res.Account.ID, claims.Subject)

		stored, err := f.store.Accounts().GetAccountByID(ctx, res.Account.ID)
		require.NoError(t, err)
		require.Equal(t, "spy:s3cret!", stored.PasswordHash)
	})

	t.Run("duplicate email conflicts without hashing", func(t *testing.T) {
		f := newFixture(t)
		register(t, f, "Ada", "ada@example.com", "pw")
		require.EqualValues(t, 1, f.hasher.hashes.Load())

		_, err := f.auth.Register(ctx, RegisterInput{Name: "Other", Email: "ada@example.com", Password: "pw2"})
		require.ErrorIs(t, err, domain.ErrConflict)
		require.Equal(t, "User with this email already exists", domain.Message(err))
		require.EqualValues(t, 1, f.hasher.hashes.Load())
	})

	t.Run("email uniqueness ignores case", func(t *testing.T) {
		f := newFixture(t)
		first := register(t, f, "Ada", " Ada@Example.com ", "pw")
		require.Equal(t, "ada@example.com", first.Account.Email)

		_, err := f.auth.Register(ctx, RegisterInput{Name: "Other", Email: "ada@example.com", Password: "pw2"})
		require.ErrorIs(t, err, domain.ErrConflict)
		require.Equal(t, "User with this email already exists", domain.Message(err))

		page, err := f.accounts.List(ctx, domain.ListQuery{})
		require.NoError(t, err)
		require.Equal(t, 1, page.Meta.TotalItems)
	})

	t.Run("invalid name is a validation error", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "pw"})
		require.ErrorIs(t, err, domain.ErrValidation)
		require.Equal(t, "Name must be at least 2 characters long", domain.Message(err))

		empty, err := f.store.Accounts().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	t.Run("overlong password is a validation error", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Register(ctx, RegisterInput{Name: "Ada", Email: "a@example.com", Password: strings.Repeat("x", 73)})
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	reg := register(t, f, "Ada", "ada@example.com", "correct horse")

	t.Run("success", func(t *testing.T) {
		res, err := f.auth.Login(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)
		require.Equal(t, reg.Account.ID, res.Account.ID)
		require.NotEmpty(t, res.AccessToken)
		require.NotEmpty(t, res.RefreshToken)
	})

	t.Run("email case is ignored", func(t *testing.T) {
		res, err := f.auth.Login(ctx, "  ADA@EXAMPLE.COM", "correct horse")
		require.NoError(t, err)
		require.Equal(t, reg.Account.ID, res.Account.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		before := f.hasher.compares.Load()
		_, err := f.auth.Login(ctx, "nobody@example.com", "correct horse")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Equal(t, "User not found", domain.Message(err))
		require.Equal(t, before, f.hasher.compares.Load())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "ada@example.com", "battery staple")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
		require.Equal(t, "Invalid credentials", domain.Message(err))
	})

	t.Run("inactive is checked before the password", func(t *testing.T) {
		_, err := f.accounts.SetActive(ctx, reg.Account.ID, false)
		require.NoError(t, err)

		before := f.hasher.compares.Load()
		for _, pw := range []string{"correct horse", "battery staple"} {
			_, err := f.auth.Login(ctx, "ada@example.com", pw)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			require.Equal(t, "User account is inactive", domain.Message(err))
		}
		require.Equal(t, before, f.hasher.compares.Load())
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a fresh pair", func(t *testing.T) {
		f := newFixture(t)
		reg := register(t, f, "Ada", "ada@example.com", "pw")

		f.clock.Advance(time.Hour)
		res, err := f.auth.Refresh(ctx, reg.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, reg.Account.ID, res.Account.ID)

		claims, err := f.tokens.VerifyAccess(res.AccessToken)
		require.NoError(t, err)
		require.WithinDuration(t, f.clock.now, claims.IssuedAt.Time, 0)
	})

	t.Run("rejects bad tokens", func(t *testing.T) {
		f := newFixture(t)
		reg := register(t, f, "Ada", "ada@example.com", "pw")

		for _, token := range []string{"", "garbage", reg.AccessToken} {
			_, err := f.auth.Refresh(ctx, token)
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			require.Equal(t, "Invalid refresh token", domain.Message(err))
		}

		f.clock.Advance(jwtx.DefaultRefreshTokenTTL + time.Minute)
		_, err := f.auth.Refresh(ctx, reg.RefreshToken)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("deleted account", func(t *testing.T) {
		f := newFixture(t)
		reg := register(t, f, "Ada", "ada@example.com", "pw")
		require.NoError(t, f.store.Accounts().DeleteAccount(ctx, reg.Account.ID))

		_, err := f.auth.Refresh(ctx, reg.RefreshToken)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
		require.Equal(t, "Invalid refresh token", domain.Message(err))
	})

	t.Run("inactive account", func(t *testing.T) {
		f := newFixture(t)
		reg := register(t, f, "Ada", "ada@example.com", "pw")
		_, err := f.accounts.SetActive(ctx, reg.Account.ID, false)
		require.NoError(t, err)

		_, err = f.auth.Refresh(ctx, reg.RefreshToken)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
		require.Equal(t, "User account is inactive", domain.Message(err))
	})
}
