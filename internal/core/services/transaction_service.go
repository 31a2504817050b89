package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
	"github.com/pjfinancas/financas_backend/internal/utils/periods"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// largeTransactionThreshold triggers the owner notification on creation.
var largeTransactionThreshold = decimal.NewFromInt(1000)

// spendingLimitWarningRatio is the fraction of the monthly limit at which
// the alert fires.
var spendingLimitWarningRatio = decimal.NewFromFloat(0.9)

// TransactionService handles transaction writes and the post-write checks
// that hang off them.
type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	companyRepo     portsrepo.CompanyReader
	reportingRepo   portsrepo.ReportingRepository
	notifier        portssvc.Notifier
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	companyRepo portsrepo.CompanyReader,
	reportingRepo portsrepo.ReportingRepository,
	notifier portssvc.Notifier,
) portssvc.TransactionSvcFacade {
	return &TransactionService{
		transactionRepo: transactionRepo,
		companyRepo:     companyRepo,
		reportingRepo:   reportingRepo,
		notifier:        notifier,
	}
}

// Ensure TransactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// GetTransactionByID retrieves a transaction scoped to a company.
func (s *TransactionService) GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
}

// ListTransactions returns a filtered page and the total match count. The
// page and the count are independent reads, so they run concurrently.
func (s *TransactionService) ListTransactions(ctx context.Context, companyID string, filters portsrepo.TransactionListFilters) ([]domain.Transaction, int64, error) {
	var (
		items []domain.Transaction
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.transactionRepo.ListTransactions(gctx, companyID, filters)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.transactionRepo.CountTransactions(gctx, companyID, filters)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("company_id", companyID))
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	if items == nil {
		items = []domain.Transaction{}
	}
	return items, total, nil
}

// CreateTransaction persists a new transaction and then runs the best-effort
// post-write checks: the large transaction notification and the monthly
// spending limit alert.
func (s *TransactionService) CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("date must be formatted as " + dto.DateLayout)
	}
	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse(dto.DateLayout, *req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("dueDate must be formatted as " + dto.DateLayout)
		}
		dueDate = &parsed
	}

	status := domain.StatusConfirmed
	if req.Status != nil {
		status = *req.Status
	}

	now := time.Now()
	transaction := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		UserID:        creatorUserID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		ClientID:      req.ClientID,
		Description:   req.Description,
		Amount:        req.Amount,
		Kind:          req.Kind,
		Status:        status,
		Date:          date,
		DueDate:       dueDate,
		Notes:         req.Notes,
		Recurring:     req.Recurring,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.notifyLargeTransaction(ctx, &transaction)
	s.checkSpendingLimit(ctx, &transaction)

	return &transaction, nil
}

// UpdateTransaction applies a partial update. Any status transition is
// allowed. The spending limit check re-runs when the result is a confirmed
// expense, since an edit can push the month over the threshold.
func (s *TransactionService) UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("amount must not be negative")
		}
		transaction.Amount = *req.Amount
	}
	if req.Kind != nil {
		transaction.Kind = *req.Kind
	}
	if req.Status != nil {
		transaction.Status = *req.Status
	}
	if req.Date != nil {
		date, err := time.Parse(dto.DateLayout, *req.Date)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("date must be formatted as " + dto.DateLayout)
		}
		transaction.Date = date
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dto.DateLayout, *req.DueDate)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("dueDate must be formatted as " + dto.DateLayout)
		}
		transaction.DueDate = &dueDate
	}
	if req.AccountID != nil {
		transaction.AccountID = req.AccountID
	}
	if req.CategoryID != nil {
		transaction.CategoryID = req.CategoryID
	}
	if req.ClientID != nil {
		transaction.ClientID = req.ClientID
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}
	if req.Recurring != nil {
		transaction.Recurring = *req.Recurring
	}

	transaction.LastUpdatedAt = time.Now()
	transaction.LastUpdatedBy = requestingUserID

	if err := s.transactionRepo.UpdateTransaction(ctx, *transaction); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.checkSpendingLimit(ctx, transaction)

	return transaction, nil
}

// DeleteTransaction removes a transaction permanently.
func (s *TransactionService) DeleteTransaction(ctx context.Context, companyID string, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, companyID, transactionID)
}

// notifyLargeTransaction tells the owner about transactions of R$ 1000 or
// more. Failures are logged and swallowed.
func (s *TransactionService) notifyLargeTransaction(ctx context.Context, transaction *domain.Transaction) {
	if s.notifier == nil || transaction.Amount.LessThan(largeTransactionThreshold) {
		return
	}

	kindLabel := "Receita"
	kindWord := "receita"
	if transaction.Kind == domain.KindExpense {
		kindLabel = "Despesa"
		kindWord = "despesa"
	}

	title := fmt.Sprintf("Nova transação: %s de R$ %s", kindLabel, transaction.Amount.StringFixed(2))
	content := fmt.Sprintf("Transação registrada: %q no valor de R$ %s (%s) em %s.",
		transaction.Description,
		transaction.Amount.StringFixed(2),
		kindWord,
		transaction.Date.Format(dto.DateLayout),
	)

	if err := s.notifier.Notify(ctx, title, content); err != nil {
		s.LogError(ctx, err, "Failed to send large transaction notification", slog.String("transaction_id", transaction.TransactionID))
	}
}

// checkSpendingLimit recomputes the current month's expense total and alerts
// the owner when it reaches 90% of the company limit. The check only applies
// to confirmed expenses and never fails the triggering write.
func (s *TransactionService) checkSpendingLimit(ctx context.Context, transaction *domain.Transaction) {
	if s.notifier == nil || transaction.Kind != domain.KindExpense || transaction.Status != domain.StatusConfirmed {
		return
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, transaction.CompanyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company for spending limit check", slog.String("company_id", transaction.CompanyID))
		return
	}
	if !company.HasSpendingLimit() {
		return
	}

	from, to := periods.CurrentMonth(time.Now())
	expense, err := s.reportingRepo.SumConfirmedAmount(ctx, company.CompanyID, domain.KindExpense, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute monthly expenses for spending limit check", slog.String("company_id", company.CompanyID))
		return
	}

	limit := *company.MonthlySpendingLimit
	if expense.LessThan(limit.Mul(spendingLimitWarningRatio)) {
		return
	}

	percent := expense.Mul(decimal.NewFromInt(100)).Div(limit).Round(0)
	title := "⚠️ Alerta: Limite de gastos próximo"
	content := fmt.Sprintf("Despesas do mês atingiram R$ %s (%s%% do limite de R$ %s).",
		expense.StringFixed(2),
		percent.String(),
		limit.StringFixed(2),
	)

	if err := s.notifier.Notify(ctx, title, content); err != nil {
		s.LogError(ctx, err, "Failed to send spending limit alert", slog.String("company_id", company.CompanyID))
	}
}
