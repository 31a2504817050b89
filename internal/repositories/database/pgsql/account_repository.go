package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

var FULL_ACCOUNT_SELECT_QUERY = `
SELECT
	a.account_id, a.company_id, a.name, a.account_type, a.bank, a.branch, a.account_number,
	a.initial_balance, a.color, a.is_active,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM accounts a
`

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	query := FULL_ACCOUNT_SELECT_QUERY + `WHERE a.company_id = $1 AND a.account_id = $2`
	rows, err := r.Pool.Query(ctx, query, companyID, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account "+accountID, err)
	}
	defer rows.Close()
	account, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect account row", err)
	}
	return &account, nil
}

// ListAccountsWithBalances derives each active account's balance from its
// confirmed transactions in a single query. Income adds, expense subtracts.
// Accounts without transactions keep their initial balance.
func (r *PgxAccountRepository) ListAccountsWithBalances(ctx context.Context, companyID string) ([]domain.AccountWithBalance, error) {
	query := `
		SELECT
			a.account_id, a.company_id, a.name, a.account_type, a.bank, a.branch, a.account_number,
			a.initial_balance, a.color, a.is_active,
			a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
			a.initial_balance + COALESCE(SUM(
				CASE WHEN t.kind = 'INCOME' THEN t.amount ELSE -t.amount END
			), 0) AS current_balance
		FROM accounts a
		LEFT JOIN transactions t
			ON t.account_id = a.account_id
			AND t.company_id = a.company_id
			AND t.status = 'CONFIRMED'
		WHERE a.company_id = $1 AND a.is_active = true
		GROUP BY a.account_id
		ORDER BY a.name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts with balances", err)
	}
	defer rows.Close()
	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AccountWithBalance])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AccountWithBalance{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect account balance rows", err)
	}
	return accounts, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (
			account_id, company_id, name, account_type, bank, branch, account_number,
			initial_balance, color, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.CompanyID,
		account.Name,
		account.AccountType,
		account.Bank,
		account.Branch,
		account.AccountNumber,
		account.InitialBalance,
		account.Color,
		account.IsActive,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save account "+account.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, account_type = $2, bank = $3, branch = $4, account_number = $5,
			initial_balance = $6, color = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE company_id = $10 AND account_id = $11;
	`
	result, err := r.Pool.Exec(ctx, query,
		account.Name,
		account.AccountType,
		account.Bank,
		account.Branch,
		account.AccountNumber,
		account.InitialBalance,
		account.Color,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
		account.CompanyID,
		account.AccountID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update account "+account.AccountID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + account.AccountID + " not found")
	}
	return nil
}

func (r *PgxAccountRepository) MarkAccountDeleted(ctx context.Context, companyID string, accountID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE accounts
		SET is_active = false, last_updated_at = $1, last_updated_by = $2
		WHERE company_id = $3 AND account_id = $4 AND is_active = true;
	`
	result, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, companyID, accountID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark account deleted "+accountID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + accountID + " not found")
	}
	return nil
}
