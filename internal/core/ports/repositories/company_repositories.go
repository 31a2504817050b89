package repositories

import (
	"context"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByOwnerUserID retrieves the company owned by a user.
	FindCompanyByOwnerUserID(ctx context.Context, ownerUserID string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompanyIfAbsent persists a new company unless the owner already has
	// one. It returns true when a row was actually inserted.
	SaveCompanyIfAbsent(ctx context.Context, company domain.Company) (bool, error)

	// UpdateCompany updates an existing company's details.
	UpdateCompany(ctx context.Context, company domain.Company) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
// This is a facade for clients that need access to all operations
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
