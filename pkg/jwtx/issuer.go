package jwtx

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

// ErrSharedSecret is returned when access and refresh tokens would be signed
// with the same key.
var ErrSharedSecret = errors.New("jwtx: access and refresh secrets must differ")

type TokenIssuerOptions struct {
	AccessSecret  []byte
	RefreshSecret []byte

	AccessTTL  time.Duration // defaults to DefaultAccessTokenTTL
	RefreshTTL time.Duration // defaults to DefaultRefreshTokenTTL

	Issuer string
	Now    func() time.Time
}

// TokenIssuer issues and verifies the access/refresh token pair. Each half
// has its own secret and lifetime; verifying an access token never touches
// the refresh secret.
type TokenIssuer struct {
	issuer string
	now    func() time.Time

	accessTTL  time.Duration
	refreshTTL time.Duration

	accessSigner    Signer
	refreshSigner   Signer
	accessVerifier  Verifier
	refreshVerifier Verifier
}

func NewTokenIssuer(opts TokenIssuerOptions) (*TokenIssuer, error) {
	if bytes.Equal(opts.AccessSecret, opts.RefreshSecret) && len(opts.AccessSecret) > 0 {
		return nil, ErrSharedSecret
	}
	if opts.AccessTTL <= 0 {
		opts.AccessTTL = DefaultAccessTokenTTL
	}
	if opts.RefreshTTL <= 0 {
		opts.RefreshTTL = DefaultRefreshTokenTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	accessSigner, err := NewSignerHS256(opts.AccessSecret)
	if err != nil {
		return nil, fmt.Errorf("access signer: %w", err)
	}
	refreshSigner, err := NewSignerHS256(opts.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh signer: %w", err)
	}

	accessVerifier, err := NewVerifierHS256(opts.AccessSecret, VerifyOptions{
		Issuer: opts.Issuer,
		Type:   TypeAccess,
		Now:    opts.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("access verifier: %w", err)
	}
	refreshVerifier, err := NewVerifierHS256(opts.RefreshSecret, VerifyOptions{
		Issuer: opts.Issuer,
		Type:   TypeRefresh,
		Now:    opts.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("refresh verifier: %w", err)
	}

	return &TokenIssuer{
		issuer:          opts.Issuer,
		now:             opts.Now,
		accessTTL:       opts.AccessTTL,
		refreshTTL:      opts.RefreshTTL,
		accessSigner:    accessSigner,
		refreshSigner:   refreshSigner,
		accessVerifier:  accessVerifier,
		refreshVerifier: refreshVerifier,
	}, nil
}

func (t *TokenIssuer) AccessTTL() time.Duration  { return t.accessTTL }
func (t *TokenIssuer) RefreshTTL() time.Duration { return t.refreshTTL }

// IssueAccess signs an access token for the account.
func (t *TokenIssuer) IssueAccess(subject, email string) (string, error) {
	return t.accessSigner.Sign(NewAccessClaims(subject, email, t.issuer, t.accessTTL, t.now()))
}

// IssueRefresh signs a refresh token for the account.
func (t *TokenIssuer) IssueRefresh(subject string) (string, error) {
	return t.refreshSigner.Sign(NewRefreshClaims(subject, t.issuer, t.refreshTTL, t.now()))
}

// VerifyAccess validates an access token. Failures wrap ErrInvalidOrExpiredToken.
func (t *TokenIssuer) VerifyAccess(token string) (Claims, error) {
	return t.accessVerifier.Verify(token)
}

// VerifyRefresh validates a refresh token. Failures wrap ErrInvalidOrExpiredToken.
func (t *TokenIssuer) VerifyRefresh(token string) (Claims, error) {
	return t.refreshVerifier.Verify(token)
}
