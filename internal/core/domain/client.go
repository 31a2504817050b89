package domain

// Client represents a customer of the company, optionally linked to
// transactions.
type Client struct {
	ClientID  string `json:"clientID"`  // Primary Key (e.g., UUID)
	CompanyID string `json:"companyID"` // FK -> companies.company_id (NON-NULL)
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	TaxID     string `json:"taxID"` // CPF/CNPJ
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	IsActive  bool   `json:"isActive"` // Soft delete flag
	AuditFields
}
