package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the BCRYPT_ROUNDS default.
const DefaultBcryptCost = 10

// MaxPasswordBytes is the longest input bcrypt considers; anything past it
// would be silently ignored.
const MaxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")

// BcryptHasher hashes passwords with a fixed bcrypt work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, falling back to
// DefaultBcryptCost when cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Cost() int { return h.cost }

// Hash returns the bcrypt digest of plaintext. The empty string is accepted;
// rejecting empty passwords is the caller's job.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether plaintext matches digest. A malformed digest never
// matches.
func (h *BcryptHasher) Compare(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
