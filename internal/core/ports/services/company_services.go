package services

import (
	"context"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// EnsureCompany returns the company owned by the user, provisioning it
	// together with the default category set on first access.
	EnsureCompany(ctx context.Context, userID string, nameHint string) (*domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// UpdateCompany updates the settings of the user's company.
	UpdateCompany(ctx context.Context, userID string, req dto.UpdateCompanyRequest) (*domain.Company, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
