package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

const (
	msgEmailTaken          = "User with this email already exists"
	msgUserNotFound        = "User not found"
	msgAccountInactive     = "User account is inactive"
	msgInvalidCredentials  = "Invalid credentials"
	msgInvalidRefreshToken = "Invalid refresh token"
)

type AuthService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens TokenIssuer
	Now    func() time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates an active account and signs it in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	log := slogx.FromContext(ctx)
	email := domain.NormalizeEmail(in.Email)

	// 1. Reject known emails before paying for a hash
	_, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	switch {
	case err == nil:
		return AuthResult{}, domain.Conflict(msgEmailTaken)
	case !errors.Is(err, store.ErrNotFound):
		return AuthResult{}, fmt.Errorf("lookup email: %w", err)
	}

	// 2. Hash password
	digest, err := hashPassword(s.Hasher, in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	// 3. Build and persist the account
	account, err := domain.NewAccount(idx.New().String(), in.Name, email, digest, now(s.Now))
	if err != nil {
		return AuthResult{}, err
	}
	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent registration
			return AuthResult{}, domain.Conflict(msgEmailTaken)
		}
		return AuthResult{}, fmt.Errorf("create account: %w", err)
	}

	log.Info("account registered", "account_id", account.ID)

	// 4. Sign in
	return s.issue(account)
}

// Login exchanges email and password for a token pair. The inactive check
// runs before the password compare.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, domain.NotFound(msgUserNotFound)
		}
		return AuthResult{}, fmt.Errorf("lookup email: %w", err)
	}

	if !account.IsActive {
		log.Warn("login attempt on inactive account", "account_id", account.ID)
		return AuthResult{}, domain.Unauthorized(msgAccountInactive)
	}

	if !s.Hasher.Compare(password, account.PasswordHash) {
		log.Warn("invalid credentials", "account_id", account.ID)
		return AuthResult{}, domain.Unauthorized(msgInvalidCredentials)
	}

	return s.issue(account)
}

// Refresh trades a valid refresh token for a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.Tokens.VerifyRefresh(refreshToken)
	if err != nil {
		log.Warn("refresh token rejected", "err", err)
		return AuthResult{}, domain.Unauthorized(msgInvalidRefreshToken)
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, domain.Unauthorized(msgInvalidRefreshToken)
		}
		return AuthResult{}, fmt.Errorf("lookup account: %w", err)
	}

	if !account.IsActive {
		return AuthResult{}, domain.Unauthorized(msgAccountInactive)
	}

	return s.issue(account)
}

func (s *AuthService) issue(a domain.Account) (AuthResult, error) {
	access, err := s.Tokens.IssueAccess(a.ID, a.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.Tokens.IssueRefresh(a.ID)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue refresh token: %w", err)
	}
	return AuthResult{
		Account:      a.Public(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
