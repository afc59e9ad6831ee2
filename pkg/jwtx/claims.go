package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Default token lifetimes. Both can be overridden with JWT_EXPIRES_IN and
// JWT_REFRESH_EXPIRES_IN.
const (
	DefaultAccessTokenTTL  = 24 * time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenType distinguishes access from refresh tokens inside the payload so a
// token can never be replayed as the other kind, even if secrets collide.
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

// Claims are the token claims shared by access and refresh tokens. The
// subject is always the account id.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the account, only present on access tokens
	Email string `json:"email,omitempty"`

	Type TokenType `json:"typ"`
}

// NewAccessClaims builds the claims for an access token.
func NewAccessClaims(subject, email, issuer string, ttl time.Duration, now time.Time) Claims {
	c := newClaims(subject, issuer, TypeAccess, ttl, now)
	c.Email = email
	return c
}

// NewRefreshClaims builds the claims for a refresh token. Refresh tokens carry
// the subject only.
func NewRefreshClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return newClaims(subject, issuer, TypeRefresh, ttl, now)
}

func newClaims(subject, issuer string, typ TokenType, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Type: typ,
	}
}

// NewJTI returns a random identifier for the "jti" claim.
func NewJTI() string {
	return uuid.NewString()
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateType checks the typ claim.
func (c *Claims) ValidateType(expected TokenType) error {
	if c.Type != expected {
		return ErrTokenType
	}
	return nil
}
