package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/pkg/idx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// SeedAccount is a demo account created by SeedService.
type SeedAccount struct {
	Name     string
	Email    string
	Password string
}

// DefaultSeedAccounts are the demo accounts created on an empty store.
var DefaultSeedAccounts = []SeedAccount{
	{Name: "Admin User", Email: "admin@example.com", Password: "Admin@123"},
	{Name: "Test User", Email: "test@example.com", Password: "Test@123"},
}

type SeedService struct {
	Store    store.Store
	Hasher   PasswordHasher
	Accounts []SeedAccount // defaults to DefaultSeedAccounts
	Now      func() time.Time
}

// Seed creates the demo accounts in one transaction when the store is empty.
// It reports whether anything was written.
func (s *SeedService) Seed(ctx context.Context) (bool, error) {
	log := slogx.FromContext(ctx)

	empty, err := s.Store.Accounts().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("check empty: %w", err)
	}
	if !empty {
		log.Info("accounts already present, skipping seed")
		return false, nil
	}

	seeds := s.Accounts
	if seeds == nil {
		seeds = DefaultSeedAccounts
	}

	// Hash outside the transaction; bcrypt is slow.
	at := now(s.Now)
	accounts := make([]domain.Account, 0, len(seeds))
	for _, seed := range seeds {
		digest, err := hashPassword(s.Hasher, seed.Password)
		if err != nil {
			return false, fmt.Errorf("hash seed password: %w", err)
		}
		a, err := domain.NewAccount(idx.New().String(), seed.Name, seed.Email, digest, at)
		if err != nil {
			return false, fmt.Errorf("seed %s: %w", seed.Email, err)
		}
		accounts = append(accounts, a)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, a := range accounts {
			if err := tx.Accounts().CreateAccount(ctx, a); err != nil {
				return fmt.Errorf("create %s: %w", a.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	for _, a := range accounts {
		log.Info("seeded account", "account_id", a.ID, "email", a.Email)
	}
	return true, nil
}
