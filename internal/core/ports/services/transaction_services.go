package services

import (
	"context"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction scoped to a company.
	GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of transactions together with
	// the total count of matches.
	ListTransactions(ctx context.Context, companyID string, filters repositories.TransactionListFilters) ([]domain.Transaction, int64, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction creates a new transaction and runs post-write checks
	// (spending limit alert, large transaction notification).
	CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update to a transaction and re-runs
	// the post-write checks when the result is a confirmed expense.
	UpdateTransaction(ctx context.Context, companyID string, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction permanently.
	DeleteTransaction(ctx context.Context, companyID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
