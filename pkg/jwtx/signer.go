package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned when constructing an HMAC signer or verifier
// without key material.
var ErrEmptySecret = errors.New("jwtx: empty secret")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// HS256Signer signs tokens with a shared HMAC-SHA256 secret.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HS256 signer from raw secret bytes.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{key: secret}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *HS256Signer) Validate() error {
	if len(s.key) == 0 {
		return ErrEmptySecret
	}
	return nil
}
