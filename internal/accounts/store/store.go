package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off the store so that a transaction can
// hand out the same repositories bound to itself.
type Store interface {
	Accounts() Accounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns ErrNotFound when no account has the id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail matches the stored email exactly.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// ListAccounts returns one page of accounts matching q together with the
	// total number of matching rows. q must already be normalized.
	ListAccounts(ctx context.Context, q domain.ListQuery) ([]domain.Account, int, error)

	// CreateAccount inserts a. A duplicate id or email yields ErrAlreadyExists.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateAccount overwrites the mutable columns of the account with a.ID.
	// A duplicate email yields ErrAlreadyExists.
	UpdateAccount(ctx context.Context, a domain.Account) error

	DeleteAccount(ctx context.Context, id string) error

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

// SortColumn maps a sort field onto its column name. Unknown fields sort by
// creation time.
func SortColumn(f domain.SortField) string {
	switch f {
	case domain.SortByUpdatedAt:
		return "updated_at"
	case domain.SortByName:
		return "name"
	case domain.SortByEmail:
		return "email"
	case domain.SortByIsActive:
		return "is_active"
	default:
		return "created_at"
	}
}

// SortDirection renders o as SQL.
func SortDirection(o domain.SortOrder) string {
	if o == domain.SortAsc {
		return "ASC"
	}
	return "DESC"
}

// EscapeLike escapes the LIKE wildcards in s using backslash as the escape
// character, and wraps it for a substring match.
func EscapeLike(s string) string {
	r := make([]rune, 0, len(s)+2)
	r = append(r, '%')
	for _, c := range s {
		switch c {
		case '\\', '%', '_':
			r = append(r, '\\')
		}
		r = append(r, c)
	}
	r = append(r, '%')
	return string(r)
}
