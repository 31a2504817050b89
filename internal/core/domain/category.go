package domain

// CategoryKind defines which transaction kinds a category is meant for.
// The kind is advisory: it is not enforced at transaction write time.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "INCOME"
	CategoryExpense CategoryKind = "EXPENSE"
	CategoryBoth    CategoryKind = "BOTH"
)

// Category classifies transactions within a company.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (e.g., UUID)
	CompanyID  string       `json:"companyID"`  // FK -> companies.company_id (NON-NULL)
	Name       string       `json:"name"`
	Kind       CategoryKind `json:"kind"`
	Color      string       `json:"color"` // Hex color for the UI
	Icon       string       `json:"icon"`  // Optional icon name
	IsActive   bool         `json:"isActive"`
	AuditFields
}

// Display values for transactions that carry no category. The color matches
// the neutral gray used by the seeded "Outros" category.
const (
	UncategorizedName  = "Sem categoria"
	UncategorizedColor = "#6b7280"
)
