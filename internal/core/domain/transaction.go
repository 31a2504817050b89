package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is an income or an expense.
type TransactionKind string

const (
	KindIncome  TransactionKind = "INCOME"
	KindExpense TransactionKind = "EXPENSE"
)

// TransactionStatus indicates the state of a transaction. Only CONFIRMED
// transactions contribute to balances and metrics. Any status may be set to
// any other via update; no transition table is enforced.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusConfirmed TransactionStatus = "CONFIRMED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction represents a single ledger entry of a company.
// Unlike the other entities, transactions are hard-deleted on removal.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (e.g., UUID)
	CompanyID     string            `json:"companyID"`     // FK -> companies.company_id (NON-NULL)
	UserID        string            `json:"userID"`        // FK -> users.user_id (NON-NULL)
	AccountID     *string           `json:"accountID"`     // Nullable FK -> accounts.account_id
	CategoryID    *string           `json:"categoryID"`    // Nullable FK -> categories.category_id
	ClientID      *string           `json:"clientID"`      // Nullable FK -> clients.client_id
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"` // Unsigned magnitude, >= 0
	Kind          TransactionKind   `json:"kind"`
	Status        TransactionStatus `json:"status"`
	Date          time.Time         `json:"date"`              // Calendar date, not a timestamp
	DueDate       *time.Time        `json:"dueDate,omitempty"` // Optional due date
	Notes         string            `json:"notes"`
	Recurring     bool              `json:"recurring"`
	AuditFields
}

// SignedAmount returns the contribution of the transaction to a balance:
// +amount for income, -amount for expense. The caller is responsible for
// filtering on status; pending and cancelled entries never contribute.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == KindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Counts reports whether the transaction contributes to balances and metrics.
func (t *Transaction) Counts() bool {
	return t.Status == StatusConfirmed
}
