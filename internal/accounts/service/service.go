// Package service holds the account flows: registration, login, token
// refresh, profile reads and updates, listing and seeding. Flows report
// failures as domain errors; anything else is an internal fault.
package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// PasswordHasher derives and checks password digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) bool
}

// TokenIssuer mints and checks access/refresh token pairs.
type TokenIssuer interface {
	IssueAccess(subject, email string) (string, error)
	IssueRefresh(subject string) (string, error)
	VerifyRefresh(token string) (jwtx.Claims, error)
}

// AuthResult is returned by every flow that signs a caller in.
type AuthResult struct {
	Account      domain.PublicAccount
	AccessToken  string
	RefreshToken string
}

// now returns the current time at the precision both drivers store.
func now(clock func() time.Time) time.Time {
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Microsecond)
}

func hashPassword(h PasswordHasher, plaintext string) (string, error) {
	digest, err := h.Hash(plaintext)
	if errors.Is(err, cryptox.ErrPasswordTooLong) {
		return "", domain.Validation("Password must be at most 72 bytes long")
	}
	return digest, err
}
