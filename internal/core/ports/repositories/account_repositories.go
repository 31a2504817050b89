package repositories

import (
	"context"
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account scoped to a company.
	FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// ListAccountsWithBalances retrieves all active accounts of a company with
	// their current balance derived from confirmed transactions.
	ListAccountsWithBalances(ctx context.Context, companyID string) ([]domain.AccountWithBalance, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountLifecycleManager defines operations for managing account lifecycle
type AccountLifecycleManager interface {
	// MarkAccountDeleted deactivates an account (soft delete).
	MarkAccountDeleted(ctx context.Context, companyID string, accountID string, deletedAt time.Time, deletedBy string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountLifecycleManager
}
