package services

import (
	"context"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account scoped to a company.
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all active accounts of a company with their
	// current balance.
	ListAccounts(ctx context.Context, companyID string) ([]domain.AccountWithBalance, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount creates a new account in the company.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount updates an existing account.
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error)
}

// AccountLifecycleSvc defines operations for managing account lifecycle
type AccountLifecycleSvc interface {
	// DeleteAccount deactivates an account (soft delete).
	DeleteAccount(ctx context.Context, companyID string, accountID string, requestingUserID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountLifecycleSvc
}
