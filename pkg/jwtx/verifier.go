package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Type the token must declare in its typ claim.
	Type TokenType

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// ErrInvalidOrExpiredToken is the only error kind verification surfaces.
// The specific cause below is joined onto it for logging.
var ErrInvalidOrExpiredToken = errors.New("jwtx: invalid or expired token")

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrTokenType    = errors.New("jwtx: unexpected token type")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier validates JWTs signed with a shared HMAC-SHA256 secret.
type HS256Verifier struct {
	key  []byte
	opts VerifyOptions
}

// NewVerifierHS256 creates a verifier for tokens signed with secret.
func NewVerifierHS256(secret []byte, opts VerifyOptions) (*HS256Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &HS256Verifier{key: secret, opts: opts}, nil
}

// Verify validates the JWT string and returns its parsed Claims. Every
// failure wraps ErrInvalidOrExpiredToken.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	claims, err := v.verify(tokenStr)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}
	return claims, nil
}

func (v *HS256Verifier) verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.opts.Now),
		jwt.WithLeeway(v.opts.Leeway),
		jwt.WithExpirationRequired(),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	// Now check the claims jwt does not know about
	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if v.opts.Type != "" {
		if err := claims.ValidateType(v.opts.Type); err != nil {
			return Claims{}, err
		}
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	default:
		return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	}
}
