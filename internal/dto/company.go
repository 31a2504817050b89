package dto

import (
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateCompanyRequest defines the data allowed for updating company settings.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCompanyRequest struct {
	Name                 *string          `json:"name" binding:"omitempty,max=255"`
	CNPJ                 *string          `json:"cnpj"`
	Email                *string          `json:"email" binding:"omitempty,email"`
	Phone                *string          `json:"phone"`
	CurrencyCode         *string          `json:"currencyCode" binding:"omitempty,len=3"`
	TimeZone             *string          `json:"timeZone"`
	MonthlySpendingLimit *decimal.Decimal `json:"monthlySpendingLimit"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID            string           `json:"companyID"`
	Name                 string           `json:"name"`
	CNPJ                 string           `json:"cnpj"`
	Email                string           `json:"email"`
	Phone                string           `json:"phone"`
	CurrencyCode         string           `json:"currencyCode"`
	TimeZone             string           `json:"timeZone"`
	MonthlySpendingLimit *decimal.Decimal `json:"monthlySpendingLimit"`
	CreatedAt            time.Time        `json:"createdAt"`
	LastUpdatedAt        time.Time        `json:"lastUpdatedAt"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:            company.CompanyID,
		Name:                 company.Name,
		CNPJ:                 company.CNPJ,
		Email:                company.Email,
		Phone:                company.Phone,
		CurrencyCode:         company.CurrencyCode,
		TimeZone:             company.TimeZone,
		MonthlySpendingLimit: company.MonthlySpendingLimit,
		CreatedAt:            company.CreatedAt,
		LastUpdatedAt:        company.LastUpdatedAt,
	}
}
