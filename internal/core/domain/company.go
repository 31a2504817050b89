package domain

import (
	"github.com/shopspring/decimal"
)

// Company represents an isolated tenant owning accounts, categories, clients
// and transactions. Every user owns exactly one company, provisioned lazily on
// first access.
type Company struct {
	CompanyID            string           `json:"companyID"`            // Primary Key (e.g., UUID)
	Name                 string           `json:"name"`                 // Display name
	CNPJ                 string           `json:"cnpj"`                 // Optional Brazilian tax id
	Email                string           `json:"email"`                // Optional contact email
	Phone                string           `json:"phone"`                // Optional contact phone
	CurrencyCode         string           `json:"currencyCode"`         // 3-letter code, default BRL; no conversion is performed
	TimeZone             string           `json:"timeZone"`             // IANA zone name, default America/Sao_Paulo
	MonthlySpendingLimit *decimal.Decimal `json:"monthlySpendingLimit"` // Nullable; >= 0 when set
	OwnerUserID          string           `json:"ownerUserID"`          // FK -> users.user_id (UNIQUE, 1:1)
	AuditFields
}

// HasSpendingLimit reports whether a monthly spending limit is configured.
func (c *Company) HasSpendingLimit() bool {
	return c.MonthlySpendingLimit != nil && c.MonthlySpendingLimit.IsPositive()
}
