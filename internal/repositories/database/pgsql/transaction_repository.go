package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

var FULL_TRANSACTION_SELECT_QUERY = `
SELECT
	t.transaction_id, t.company_id, t.user_id, t.account_id, t.category_id, t.client_id,
	t.description, t.amount, t.kind, t.status, t.date, t.due_date, t.notes, t.recurring,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM transactions t
`

// buildFilterClause translates the listing filters into a WHERE clause.
// The company predicate always comes first.
func buildFilterClause(companyID string, filters portsrepo.TransactionListFilters) (string, []any) {
	clauses := []string{"t.company_id = $1"}
	args := []any{companyID}

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s $%d", column, len(args)))
	}

	if filters.Kind != nil {
		add("t.kind =", *filters.Kind)
	}
	if filters.Status != nil {
		add("t.status =", *filters.Status)
	}
	if filters.AccountID != nil {
		add("t.account_id =", *filters.AccountID)
	}
	if filters.CategoryID != nil {
		add("t.category_id =", *filters.CategoryID)
	}
	if filters.ClientID != nil {
		add("t.client_id =", *filters.ClientID)
	}
	if filters.DateFrom != nil {
		add("t.date >=", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		add("t.date <=", *filters.DateTo)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PgxTransactionRepository) getTransactions(ctx context.Context, filterQuery string, args ...any) ([]domain.Transaction, error) {
	query := FULL_TRANSACTION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()
	transactions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return transactions, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	query := `WHERE t.company_id = $1 AND t.transaction_id = $2`
	transactions, err := r.getTransactions(ctx, query, companyID, transactionID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &transactions[0], nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string, filters portsrepo.TransactionListFilters) ([]domain.Transaction, error) {
	whereClause, args := buildFilterClause(companyID, filters)

	args = append(args, filters.Limit)
	limitPos := len(args)
	args = append(args, filters.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf("%s ORDER BY t.date DESC, t.created_at DESC LIMIT $%d OFFSET $%d", whereClause, limitPos, offsetPos)
	return r.getTransactions(ctx, query, args...)
}

func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, companyID string, filters portsrepo.TransactionListFilters) (int64, error) {
	whereClause, args := buildFilterClause(companyID, filters)
	query := "SELECT COUNT(*) FROM transactions t " + whereClause

	var total int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}
	return total, nil
}

func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, companyID string, limit int) ([]domain.Transaction, error) {
	query := `WHERE t.company_id = $1 ORDER BY t.created_at DESC LIMIT $2`
	return r.getTransactions(ctx, query, companyID, limit)
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, company_id, user_id, account_id, category_id, client_id,
			description, amount, kind, status, date, due_date, notes, recurring,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		transaction.TransactionID,
		transaction.CompanyID,
		transaction.UserID,
		transaction.AccountID,
		transaction.CategoryID,
		transaction.ClientID,
		transaction.Description,
		transaction.Amount,
		transaction.Kind,
		transaction.Status,
		transaction.Date,
		transaction.DueDate,
		transaction.Notes,
		transaction.Recurring,
		transaction.CreatedAt,
		transaction.CreatedBy,
		transaction.LastUpdatedAt,
		transaction.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("referenced account, category or client does not exist")
		}
		return apperrors.NewAppError(500, "failed to save transaction "+transaction.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transaction domain.Transaction) error {
	query := `
		UPDATE transactions
		SET account_id = $1, category_id = $2, client_id = $3, description = $4,
			amount = $5, kind = $6, status = $7, date = $8, due_date = $9,
			notes = $10, recurring = $11, last_updated_at = $12, last_updated_by = $13
		WHERE company_id = $14 AND transaction_id = $15;
	`
	result, err := r.Pool.Exec(ctx, query,
		transaction.AccountID,
		transaction.CategoryID,
		transaction.ClientID,
		transaction.Description,
		transaction.Amount,
		transaction.Kind,
		transaction.Status,
		transaction.Date,
		transaction.DueDate,
		transaction.Notes,
		transaction.Recurring,
		transaction.LastUpdatedAt,
		transaction.LastUpdatedBy,
		transaction.CompanyID,
		transaction.TransactionID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("referenced account, category or client does not exist")
		}
		return apperrors.NewAppError(500, "failed to update transaction "+transaction.TransactionID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transaction.TransactionID + " not found")
	}
	return nil
}

// DeleteTransaction removes the row permanently. Transactions are the one
// entity with hard deletes.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	query := `DELETE FROM transactions WHERE company_id = $1 AND transaction_id = $2;`
	result, err := r.Pool.Exec(ctx, query, companyID, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID + " not found")
	}
	return nil
}
