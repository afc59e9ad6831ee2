package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const minNameLength = 2

// Account is a registered user. Values are treated as immutable: the mutators
// below return an updated copy and leave the receiver untouched.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicAccount is the externally visible projection of an Account. It never
// carries the password hash.
type PublicAccount struct {
	ID        string
	Name      string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount validates its inputs and returns an active account whose
// timestamps are both set to now.
func NewAccount(id, name, email, passwordHash string, now time.Time) (Account, error) {
	name, err := validateName(name)
	if err != nil {
		return Account{}, err
	}
	email, err = validateEmail(email)
	if err != nil {
		return Account{}, err
	}
	if passwordHash == "" {
		return Account{}, Validation("Password is required")
	}

	return Account{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (a Account) WithName(name string, now time.Time) (Account, error) {
	name, err := validateName(name)
	if err != nil {
		return a, err
	}
	a.Name = name
	a.UpdatedAt = now
	return a, nil
}

func (a Account) WithEmail(email string, now time.Time) (Account, error) {
	email, err := validateEmail(email)
	if err != nil {
		return a, err
	}
	a.Email = email
	a.UpdatedAt = now
	return a, nil
}

func (a Account) WithPasswordHash(hash string, now time.Time) (Account, error) {
	if hash == "" {
		return a, Validation("Password is required")
	}
	a.PasswordHash = hash
	a.UpdatedAt = now
	return a, nil
}

func (a Account) Activate(now time.Time) Account {
	a.IsActive = true
	a.UpdatedAt = now
	return a
}

func (a Account) Deactivate(now time.Time) Account {
	a.IsActive = false
	a.UpdatedAt = now
	return a
}

func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", Validation("Name is required")
	}
	if utf8.RuneCountInString(name) < minNameLength {
		return "", Validation("Name must be at least 2 characters long")
	}
	return name, nil
}

func validateEmail(email string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return "", Validation("Email is required")
	}
	return email, nil
}
