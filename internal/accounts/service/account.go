package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/idx"
)

const msgEmailInUse = "Email already in use"

type AccountService struct {
	Store  store.Store
	Hasher PasswordHasher
	Now    func() time.Time
}

// UpdateInput carries the optional profile changes. Nil or empty fields are
// left alone.
type UpdateInput struct {
	Name  *string
	Email *string
}

// GetByID returns the public projection of the account with id.
func (s *AccountService) GetByID(ctx context.Context, id string) (domain.PublicAccount, error) {
	a, err := s.get(ctx, s.Store, id)
	if err != nil {
		return domain.PublicAccount{}, err
	}
	return a.Public(), nil
}

// Update applies in to the account with id. The email uniqueness check and
// the write share one transaction.
func (s *AccountService) Update(ctx context.Context, id string, in UpdateInput) (domain.PublicAccount, error) {
	var out domain.Account

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := s.get(ctx, tx, id)
		if err != nil {
			return err
		}

		at := now(s.Now)
		next, changed := current, false

		if in.Email != nil {
			email := domain.NormalizeEmail(*in.Email)
			if email != "" && email != current.Email {
				_, err := tx.Accounts().GetAccountByEmail(ctx, email)
				switch {
				case err == nil:
					return domain.Conflict(msgEmailInUse)
				case !errors.Is(err, store.ErrNotFound):
					return fmt.Errorf("lookup email: %w", err)
				}
				if next, err = next.WithEmail(email, at); err != nil {
					return err
				}
				changed = true
			}
		}

		// Only an omitted or empty name is skipped. Whitespace is validated.
		if in.Name != nil && *in.Name != "" {
			if name := strings.TrimSpace(*in.Name); name != current.Name {
				if next, err = next.WithName(*in.Name, at); err != nil {
					return err
				}
				changed = true
			}
		}

		out = next
		if !changed {
			return nil
		}
		return s.write(ctx, tx, next)
	})
	if err != nil {
		return domain.PublicAccount{}, err
	}
	return out.Public(), nil
}

// List returns one page of accounts matching q.
func (s *AccountService) List(ctx context.Context, q domain.ListQuery) (domain.Page[domain.PublicAccount], error) {
	q = q.Normalize()

	accounts, total, err := s.Store.Accounts().ListAccounts(ctx, q)
	if err != nil {
		return domain.Page[domain.PublicAccount]{}, fmt.Errorf("list accounts: %w", err)
	}

	public := make([]domain.PublicAccount, len(accounts))
	for i, a := range accounts {
		public[i] = a.Public()
	}
	return domain.NewPage(public, total, q), nil
}

// ChangePassword replaces the password of the account with id.
func (s *AccountService) ChangePassword(ctx context.Context, id, plaintext string) error {
	a, err := s.get(ctx, s.Store, id)
	if err != nil {
		return err
	}

	digest, err := hashPassword(s.Hasher, plaintext)
	if err != nil {
		return err
	}
	a, err = a.WithPasswordHash(digest, now(s.Now))
	if err != nil {
		return err
	}
	return s.write(ctx, s.Store, a)
}

// SetActive activates or deactivates the account with id.
func (s *AccountService) SetActive(ctx context.Context, id string, active bool) (domain.PublicAccount, error) {
	a, err := s.get(ctx, s.Store, id)
	if err != nil {
		return domain.PublicAccount{}, err
	}
	if a.IsActive == active {
		return a.Public(), nil
	}

	if active {
		a = a.Activate(now(s.Now))
	} else {
		a = a.Deactivate(now(s.Now))
	}
	if err := s.write(ctx, s.Store, a); err != nil {
		return domain.PublicAccount{}, err
	}
	return a.Public(), nil
}

func (s *AccountService) get(ctx context.Context, st store.Store, id string) (domain.Account, error) {
	// Ids are ULIDs; anything else cannot exist.
	if _, err := idx.Parse(id); err != nil {
		return domain.Account{}, domain.NotFound(msgUserNotFound)
	}

	a, err := st.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, domain.NotFound(msgUserNotFound)
		}
		return domain.Account{}, fmt.Errorf("lookup account: %w", err)
	}
	return a, nil
}

func (s *AccountService) write(ctx context.Context, st store.Store, a domain.Account) error {
	err := st.Accounts().UpdateAccount(ctx, a)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.Conflict(msgEmailInUse)
	case errors.Is(err, store.ErrNotFound):
		return domain.NotFound(msgUserNotFound)
	default:
		return fmt.Errorf("update account: %w", err)
	}
}
