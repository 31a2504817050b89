package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardMetrics summarizes the current calendar month of a company.
// PendingCount is tenant-wide, not month-scoped: it surfaces every outstanding
// pending transaction regardless of date.
type DashboardMetrics struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"` // Income - Expense
	PendingCount int64           `json:"pendingCount"`
}

// MonthBucket is one point of the monthly evolution series. Month is keyed
// "YYYY-MM". The series is sparse: months with no confirmed transactions are
// omitted rather than zero-filled.
type MonthBucket struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryTotal aggregates current-month confirmed transactions for a single
// category. A nil CategoryID identifies the uncategorized bucket.
type CategoryTotal struct {
	CategoryID    *string         `json:"categoryID"`
	CategoryName  string          `json:"categoryName"`
	CategoryColor string          `json:"categoryColor"`
	IncomeTotal   decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
}
