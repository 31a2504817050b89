package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SumConfirmedAmount totals the confirmed transaction amounts of one kind
// within the inclusive date window.
func (r *reportingRepository) SumConfirmedAmount(ctx context.Context, companyID string, kind domain.TransactionKind, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE company_id = $1
			AND kind = $2
			AND status = 'CONFIRMED'
			AND date >= $3
			AND date <= $4;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, companyID, kind, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing confirmed %s amounts: %w", kind, err)
	}
	return total, nil
}

// CountPendingTransactions counts the pending transactions of a company
// regardless of their date.
func (r *reportingRepository) CountPendingTransactions(ctx context.Context, companyID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM transactions
		WHERE company_id = $1 AND status = 'PENDING';
	`
	var count int64
	if err := r.Pool.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting pending transactions: %w", err)
	}
	return count, nil
}

// GetMonthlyTotals retrieves per-month income and expense totals within the
// window, ascending by month. Months without confirmed transactions produce
// no row, so the series is sparse.
func (r *reportingRepository) GetMonthlyTotals(ctx context.Context, companyID string, from, to time.Time) ([]domain.MonthBucket, error) {
	query := `
		SELECT
			to_char(date, 'YYYY-MM') AS month,
			SUM(CASE WHEN kind = 'INCOME' THEN amount ELSE 0 END) AS income,
			SUM(CASE WHEN kind = 'EXPENSE' THEN amount ELSE 0 END) AS expense
		FROM transactions
		WHERE company_id = $1
			AND status = 'CONFIRMED'
			AND date >= $2
			AND date <= $3
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly totals: %w", err)
	}
	defer rows.Close()

	var buckets []domain.MonthBucket
	for rows.Next() {
		var bucket domain.MonthBucket
		if err := rows.Scan(&bucket.Month, &bucket.Income, &bucket.Expense); err != nil {
			return nil, fmt.Errorf("error scanning monthly total row: %w", err)
		}
		buckets = append(buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}
	return buckets, nil
}

// GetCategoryTotals retrieves per-category income and expense totals within
// the window. Uncategorized transactions group under a NULL category ID;
// callers decide how to label that bucket.
func (r *reportingRepository) GetCategoryTotals(ctx context.Context, companyID string, from, to time.Time) ([]domain.CategoryTotal, error) {
	query := `
		SELECT
			t.category_id,
			COALESCE(c.name, '') AS category_name,
			COALESCE(c.color, '') AS category_color,
			SUM(CASE WHEN t.kind = 'INCOME' THEN t.amount ELSE 0 END) AS income_total,
			SUM(CASE WHEN t.kind = 'EXPENSE' THEN t.amount ELSE 0 END) AS expense_total
		FROM transactions t
		LEFT JOIN categories c
			ON c.category_id = t.category_id
			AND c.company_id = t.company_id
		WHERE t.company_id = $1
			AND t.status = 'CONFIRMED'
			AND t.date >= $2
			AND t.date <= $3
		GROUP BY t.category_id, c.name, c.color;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var total domain.CategoryTotal
		if err := rows.Scan(&total.CategoryID, &total.CategoryName, &total.CategoryColor, &total.IncomeTotal, &total.ExpenseTotal); err != nil {
			return nil, fmt.Errorf("error scanning category total row: %w", err)
		}
		totals = append(totals, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}
	return totals, nil
}
