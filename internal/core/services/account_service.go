package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// AccountService handles business logic related to bank accounts.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

// Ensure AccountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// GetAccountByID retrieves an account scoped to a company.
func (s *AccountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, companyID, accountID)
}

// ListAccounts returns all active accounts with their derived balance. When
// storage fails the dashboard should still render, so the error is logged and
// an empty list returned.
func (s *AccountService) ListAccounts(ctx context.Context, companyID string) ([]domain.AccountWithBalance, error) {
	accounts, err := s.accountRepo.ListAccountsWithBalances(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts with balances", slog.String("company_id", companyID))
		return []domain.AccountWithBalance{}, nil
	}
	if accounts == nil {
		accounts = []domain.AccountWithBalance{}
	}
	return accounts, nil
}

// CreateAccount creates a new account in the company.
func (s *AccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      companyID,
		Name:           req.Name,
		AccountType:    req.AccountType,
		Bank:           req.Bank,
		Branch:         req.Branch,
		AccountNumber:  req.AccountNumber,
		InitialBalance: req.InitialBalance,
		Color:          req.Color,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

// UpdateAccount applies a partial update to an account.
func (s *AccountService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	if req.Bank != nil {
		account.Bank = *req.Bank
	}
	if req.Branch != nil {
		account.Branch = *req.Branch
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.InitialBalance != nil {
		account.InitialBalance = *req.InitialBalance
	}
	if req.Color != nil {
		account.Color = *req.Color
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeleteAccount deactivates an account. Its transactions stay in place.
func (s *AccountService) DeleteAccount(ctx context.Context, companyID string, accountID string, requestingUserID string) error {
	return s.accountRepo.MarkAccountDeleted(ctx, companyID, accountID, time.Now(), requestingUserID)
}
