package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/utils/periods"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// recentTransactionCount is the size of the dashboard's recent activity feed.
const recentTransactionCount = 5

// DashboardService aggregates transaction data for the dashboard. All reads
// are fail-soft: a storage failure degrades to zeros or an empty series so
// the dashboard still renders.
type DashboardService struct {
	BaseService
	reportingRepo   portsrepo.ReportingRepository
	transactionRepo portsrepo.TransactionReader
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(reportingRepo portsrepo.ReportingRepository, transactionRepo portsrepo.TransactionReader) portssvc.DashboardService {
	return &DashboardService{
		reportingRepo:   reportingRepo,
		transactionRepo: transactionRepo,
	}
}

// Ensure DashboardService implements the portssvc.DashboardService interface
var _ portssvc.DashboardService = (*DashboardService)(nil)

// GetMetrics computes the current month's income, expense and net, plus the
// company-wide pending count. The three reads are independent and run
// concurrently.
func (s *DashboardService) GetMetrics(ctx context.Context, companyID string) (*domain.DashboardMetrics, error) {
	from, to := periods.CurrentMonth(time.Now())

	var (
		income       decimal.Decimal
		expense      decimal.Decimal
		pendingCount int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = s.reportingRepo.SumConfirmedAmount(gctx, companyID, domain.KindIncome, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		expense, err = s.reportingRepo.SumConfirmedAmount(gctx, companyID, domain.KindExpense, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		pendingCount, err = s.reportingRepo.CountPendingTransactions(gctx, companyID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute dashboard metrics, degrading to zeros", slog.String("company_id", companyID))
		return &domain.DashboardMetrics{
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Net:     decimal.Zero,
		}, nil
	}

	return &domain.DashboardMetrics{
		Income:       income,
		Expense:      expense,
		Net:          income.Sub(expense),
		PendingCount: pendingCount,
	}, nil
}

// GetMonthlyEvolution returns per-month income and expense buckets over a
// trailing window. The window starts on the first day of the month the given
// number of months before now. Buckets are sparse and ascending; a month
// whose totals are both zero is dropped.
func (s *DashboardService) GetMonthlyEvolution(ctx context.Context, companyID string, months int) ([]domain.MonthBucket, error) {
	now := time.Now()
	from := periods.TrailingWindowStart(now, months)

	buckets, err := s.reportingRepo.GetMonthlyTotals(ctx, companyID, from, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute monthly evolution, degrading to empty series", slog.String("company_id", companyID))
		return []domain.MonthBucket{}, nil
	}

	result := make([]domain.MonthBucket, 0, len(buckets))
	for _, bucket := range buckets {
		if bucket.Income.IsZero() && bucket.Expense.IsZero() {
			continue
		}
		result = append(result, bucket)
	}
	return result, nil
}

// GetCategoryDistribution groups the current month's confirmed transactions
// by category. Uncategorized transactions get their own labeled bucket.
func (s *DashboardService) GetCategoryDistribution(ctx context.Context, companyID string) ([]domain.CategoryTotal, error) {
	from, to := periods.CurrentMonth(time.Now())

	totals, err := s.reportingRepo.GetCategoryTotals(ctx, companyID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute category distribution, degrading to empty result", slog.String("company_id", companyID))
		return []domain.CategoryTotal{}, nil
	}

	result := make([]domain.CategoryTotal, 0, len(totals))
	for _, total := range totals {
		if total.CategoryID == nil {
			total.CategoryName = domain.UncategorizedName
			total.CategoryColor = domain.UncategorizedColor
		}
		result = append(result, total)
	}
	return result, nil
}

// GetRecentTransactions returns the latest transactions for the activity feed.
func (s *DashboardService) GetRecentTransactions(ctx context.Context, companyID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListRecentTransactions(ctx, companyID, recentTransactionCount)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent transactions, degrading to empty list", slog.String("company_id", companyID))
		return []domain.Transaction{}, nil
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}
