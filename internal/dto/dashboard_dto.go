package dto

import (
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EvolutionParams defines query parameters for the monthly evolution endpoint.
type EvolutionParams struct {
	Months int `form:"months,default=6" binding:"min=1,max=24"`
}

// DashboardMetricsResponse defines the current-month metrics payload.
type DashboardMetricsResponse struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
	PendingCount int64           `json:"pendingCount"`
}

// MonthBucketResponse defines one month of the evolution series.
type MonthBucketResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryTotalResponse defines one group of the category distribution.
type CategoryTotalResponse struct {
	CategoryID    *string         `json:"categoryID"`
	CategoryName  string          `json:"categoryName"`
	CategoryColor string          `json:"categoryColor"`
	IncomeTotal   decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal  decimal.Decimal `json:"expenseTotal"`
}

// ToDashboardMetricsResponse converts domain.DashboardMetrics to its DTO
func ToDashboardMetricsResponse(m *domain.DashboardMetrics) DashboardMetricsResponse {
	return DashboardMetricsResponse{
		Income:       m.Income,
		Expense:      m.Expense,
		Net:          m.Net,
		PendingCount: m.PendingCount,
	}
}

// ToListMonthBucketResponse converts a slice of domain.MonthBucket to DTOs
func ToListMonthBucketResponse(buckets []domain.MonthBucket) []MonthBucketResponse {
	res := make([]MonthBucketResponse, len(buckets))
	for i, b := range buckets {
		res[i] = MonthBucketResponse{Month: b.Month, Income: b.Income, Expense: b.Expense}
	}
	return res
}

// ToListCategoryTotalResponse converts a slice of domain.CategoryTotal to DTOs
func ToListCategoryTotalResponse(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{
			CategoryID:    t.CategoryID,
			CategoryName:  t.CategoryName,
			CategoryColor: t.CategoryColor,
			IncomeTotal:   t.IncomeTotal,
			ExpenseTotal:  t.ExpenseTotal,
		}
	}
	return res
}
