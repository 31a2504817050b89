package dto

import (
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for transaction dates.
const DateLayout = "2006-01-02"

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Kind       *string `form:"kind" binding:"omitempty,oneof=INCOME EXPENSE"`
	Status     *string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	AccountID  *string `form:"accountID"`
	CategoryID *string `form:"categoryID"`
	ClientID   *string `form:"clientID"`
	DateFrom   *string `form:"dateFrom" binding:"omitempty,datetime=2006-01-02"`
	DateTo     *string `form:"dateTo" binding:"omitempty,datetime=2006-01-02"`
	Limit      int     `form:"limit,default=50" binding:"min=1,max=100"`
	Offset     int     `form:"offset,default=0" binding:"min=0"`
}

// CreateTransactionRequest defines the data needed to create a new transaction.
type CreateTransactionRequest struct {
	Description string                    `json:"description" binding:"required,max=500"`
	Amount      decimal.Decimal           `json:"amount" binding:"required"`
	Kind        domain.TransactionKind    `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Status      *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	Date        string                    `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate     *string                   `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AccountID   *string                   `json:"accountID"`
	CategoryID  *string                   `json:"categoryID"`
	ClientID    *string                   `json:"clientID"`
	Notes       string                    `json:"notes"`
	Recurring   bool                      `json:"recurring"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Description *string                   `json:"description" binding:"omitempty,max=500"`
	Amount      *decimal.Decimal          `json:"amount"`
	Kind        *domain.TransactionKind   `json:"kind" binding:"omitempty,oneof=INCOME EXPENSE"`
	Status      *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
	Date        *string                   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DueDate     *string                   `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AccountID   *string                   `json:"accountID"`
	CategoryID  *string                   `json:"categoryID"`
	ClientID    *string                   `json:"clientID"`
	Notes       *string                   `json:"notes"`
	Recurring   *bool                     `json:"recurring"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Description   string                   `json:"description"`
	Amount        decimal.Decimal          `json:"amount"`
	Kind          domain.TransactionKind   `json:"kind"`
	Status        domain.TransactionStatus `json:"status"`
	Date          string                   `json:"date"`
	DueDate       *string                  `json:"dueDate"`
	AccountID     *string                  `json:"accountID"`
	CategoryID    *string                  `json:"categoryID"`
	ClientID      *string                  `json:"clientID"`
	Notes         string                   `json:"notes"`
	Recurring     bool                     `json:"recurring"`
	CreatedAt     time.Time                `json:"createdAt"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a page of transactions with the total match count.
type ListTransactionsResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int64                 `json:"total"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	var dueDate *string
	if txn.DueDate != nil {
		formatted := txn.DueDate.Format(DateLayout)
		dueDate = &formatted
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		Status:        txn.Status,
		Date:          txn.Date.Format(DateLayout),
		DueDate:       dueDate,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		ClientID:      txn.ClientID,
		Notes:         txn.Notes,
		Recurring:     txn.Recurring,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a page of domain.Transaction to ListTransactionsResponse
func ToListTransactionsResponse(txns []domain.Transaction, total int64) ListTransactionsResponse {
	items := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		items[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Items: items, Total: total}
}
