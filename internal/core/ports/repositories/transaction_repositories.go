package repositories

import (
	"context"
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// TransactionListFilters narrows a transaction listing. Nil fields are not
// applied. Limit and Offset are always applied by ListTransactions and ignored
// by CountTransactions.
type TransactionListFilters struct {
	Kind       *domain.TransactionKind
	Status     *domain.TransactionStatus
	AccountID  *string
	CategoryID *string
	ClientID   *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction scoped to a company.
	FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of transactions, most recent first.
	ListTransactions(ctx context.Context, companyID string, filters TransactionListFilters) ([]domain.Transaction, error)

	// CountTransactions counts the transactions matching the filters.
	CountTransactions(ctx context.Context, companyID string, filters TransactionListFilters) (int64, error)

	// ListRecentTransactions retrieves the most recently created transactions.
	ListRecentTransactions(ctx context.Context, companyID string, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, companyID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
