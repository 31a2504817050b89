package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the kind of a financial account.
type AccountType string

const (
	AccountCurrent    AccountType = "CURRENT"
	AccountSavings    AccountType = "SAVINGS"
	AccountInvestment AccountType = "INVESTMENT"
	AccountCreditCard AccountType = "CREDIT_CARD"
	AccountOther      AccountType = "OTHER"
)

// Account represents a financial account within the core domain.
// Balances are never stored: the current balance is always derived from the
// initial balance plus the confirmed transactions linked to the account.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary Key (e.g., UUID)
	CompanyID      string          `json:"companyID"`      // FK -> companies.company_id (NON-NULL)
	Name           string          `json:"name"`           // User-defined name
	AccountType    AccountType     `json:"accountType"`    // CURRENT, SAVINGS, etc.
	Bank           string          `json:"bank"`           // Optional bank name
	Branch         string          `json:"branch"`         // Optional branch code
	AccountNumber  string          `json:"accountNumber"`  // Optional account number
	InitialBalance decimal.Decimal `json:"initialBalance"` // Signed opening balance
	Color          string          `json:"color"`          // Hex color for the UI
	IsActive       bool            `json:"isActive"`       // Soft delete flag
	AuditFields
}

// AccountWithBalance augments an Account with its derived current balance.
type AccountWithBalance struct {
	Account
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}
