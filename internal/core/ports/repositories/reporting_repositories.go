package repositories

import (
	"context"
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines aggregation reads for dashboard data.
// All sums consider confirmed transactions only.
type ReportingRepository interface {
	// SumConfirmedAmount totals confirmed transaction amounts of a kind within
	// the inclusive date window.
	SumConfirmedAmount(ctx context.Context, companyID string, kind domain.TransactionKind, from, to time.Time) (decimal.Decimal, error)

	// CountPendingTransactions counts all pending transactions of a company,
	// regardless of date.
	CountPendingTransactions(ctx context.Context, companyID string) (int64, error)

	// GetMonthlyTotals retrieves per-month income and expense totals within the
	// window, ascending by month. Months without confirmed transactions are absent.
	GetMonthlyTotals(ctx context.Context, companyID string, from, to time.Time) ([]domain.MonthBucket, error)

	// GetCategoryTotals retrieves per-category income and expense totals within
	// the window. Transactions without a category group under a nil category ID.
	GetCategoryTotals(ctx context.Context, companyID string, from, to time.Time) ([]domain.CategoryTotal, error)
}
