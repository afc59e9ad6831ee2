package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite/gen"
)

const accountColumns = `id, name, email, password_hash, is_active, created_at, updated_at`

type accountsRepo struct {
	db gen.DBTX
	q  *gen.Queries
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row, err := r.q.GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row), nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row, err := r.q.GetAccountByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row), nil
}

// ListAccounts is written by hand since sqlc cannot template ORDER BY.
func (r *accountsRepo) ListAccounts(ctx context.Context, q domain.ListQuery) ([]domain.Account, int, error) {
	var (
		where []string
		args  []any
	)
	if q.Search != "" {
		pattern := store.EscapeLike(q.Search)
		where = append(where, `(name LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}
	if q.IsActive != nil {
		where = append(where, `is_active = ?`)
		args = append(args, *q.IsActive)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count accounts: %w", err)
	}

	dir := store.SortDirection(q.SortOrder)
	query := fmt.Sprintf(`SELECT %s FROM accounts%s ORDER BY %s %s, id %s LIMIT ? OFFSET ?`,
		accountColumns, clause, store.SortColumn(q.SortBy), dir, dir)

	rows, err := r.db.QueryContext(ctx, query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, q.Limit)
	for rows.Next() {
		var row gen.Account
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Email,
			&row.PasswordHash,
			&row.IsActive,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, mapAccount(row))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	err := r.q.CreateAccount(ctx, gen.CreateAccountParams{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt.UTC(),
		UpdatedAt:    a.UpdatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *accountsRepo) UpdateAccount(ctx context.Context, a domain.Account) error {
	n, err := r.q.UpdateAccount(ctx, gen.UpdateAccountParams{
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		IsActive:     a.IsActive,
		UpdatedAt:    a.UpdatedAt.UTC(),
		ID:           a.ID,
	})
	if err != nil {
		return mapConstraint(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	return r.q.DeleteAccount(ctx, id)
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountAccounts(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
