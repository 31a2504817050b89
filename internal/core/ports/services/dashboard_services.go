package services

import (
	"context"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// DashboardService defines the aggregation operations backing the dashboard.
// Reads degrade to zero or empty results when storage fails; absence of data
// is never an error.
type DashboardService interface {
	// GetMetrics computes income, expense, net and pending count. Income,
	// expense and net cover the current calendar month; the pending count is
	// company-wide.
	GetMetrics(ctx context.Context, companyID string) (*domain.DashboardMetrics, error)

	// GetMonthlyEvolution computes per-month income and expense buckets over a
	// trailing window of the given number of months, ascending. Months without
	// confirmed transactions are omitted.
	GetMonthlyEvolution(ctx context.Context, companyID string, months int) ([]domain.MonthBucket, error)

	// GetCategoryDistribution groups the current month's confirmed
	// transactions by category.
	GetCategoryDistribution(ctx context.Context, companyID string) ([]domain.CategoryTotal, error)

	// GetRecentTransactions retrieves the most recent transactions.
	GetRecentTransactions(ctx context.Context, companyID string) ([]domain.Transaction, error)
}
