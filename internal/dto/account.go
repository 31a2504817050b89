package dto

import (
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required,max=255"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=CURRENT SAVINGS INVESTMENT CREDIT_CARD OTHER"`
	Bank           string             `json:"bank"`
	Branch         string             `json:"branch"`
	AccountNumber  string             `json:"accountNumber"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	Color          string             `json:"color"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name           *string             `json:"name" binding:"omitempty,max=255"`
	AccountType    *domain.AccountType `json:"accountType" binding:"omitempty,oneof=CURRENT SAVINGS INVESTMENT CREDIT_CARD OTHER"`
	Bank           *string             `json:"bank"`
	Branch         *string             `json:"branch"`
	AccountNumber  *string             `json:"accountNumber"`
	InitialBalance *decimal.Decimal    `json:"initialBalance"`
	Color          *string             `json:"color"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	Bank           string             `json:"bank"`
	Branch         string             `json:"branch"`
	AccountNumber  string             `json:"accountNumber"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	Color          string             `json:"color"`
	IsActive       bool               `json:"isActive"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// AccountWithBalanceResponse extends AccountResponse with the derived balance.
type AccountWithBalanceResponse struct {
	AccountResponse
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// ListAccountsResponse wraps the list of accounts with balances.
type ListAccountsResponse struct {
	Accounts []AccountWithBalanceResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		Bank:           acc.Bank,
		Branch:         acc.Branch,
		AccountNumber:  acc.AccountNumber,
		InitialBalance: acc.InitialBalance,
		Color:          acc.Color,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain.AccountWithBalance to ListAccountsResponse
func ToListAccountsResponse(accounts []domain.AccountWithBalance) ListAccountsResponse {
	res := make([]AccountWithBalanceResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = AccountWithBalanceResponse{
			AccountResponse: ToAccountResponse(&acc.Account),
			CurrentBalance:  acc.CurrentBalance,
		}
	}
	return ListAccountsResponse{Accounts: res}
}
