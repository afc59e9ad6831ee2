package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/accounts/internal/accounts/domain"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

const accountColumns = `id, name, email, password_hash, is_active, created_at, updated_at`

type accountsRepo struct {
	db dbtx
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.Account{}, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE lower(email) = lower($1)`
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) ListAccounts(ctx context.Context, q domain.ListQuery) ([]domain.Account, int, error) {
	var (
		where []string
		args  []any
	)
	if q.Search != "" {
		args = append(args, store.EscapeLike(q.Search))
		n := len(args)
		where = append(where, fmt.Sprintf(`(name ILIKE $%d OR email ILIKE $%d)`, n, n))
	}
	if q.IsActive != nil {
		args = append(args, *q.IsActive)
		where = append(where, fmt.Sprintf(`is_active = $%d`, len(args)))
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
	query := fmt.Sprintf(`SELECT %s FROM accounts%s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d`,
		accountColumns, clause, store.SortColumn(q.SortBy), dir, dir, len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, q.Limit)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Name, a.Email, a.PasswordHash, a.IsActive, a.CreatedAt.UTC(), a.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *accountsRepo) UpdateAccount(ctx context.Context, a domain.Account) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET name = $1, email = $2, password_hash = $3, is_active = $4, updated_at = $5 WHERE id = $6`,
		a.Name, a.Email, a.PasswordHash, a.IsActive, a.UpdatedAt.UTC(), a.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	return err
}

func (r *accountsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts)`).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}
