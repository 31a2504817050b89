package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

const (
	defaultCurrencyCode = "BRL"
	defaultTimeZone     = "America/Sao_Paulo"
)

// CompanyService handles tenant provisioning and company settings.
type CompanyService struct {
	BaseService
	companyRepo  portsrepo.CompanyRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CompanySvcFacade {
	return &CompanyService{
		companyRepo:  companyRepo,
		categoryRepo: categoryRepo,
	}
}

// Ensure CompanyService implements the portssvc.CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*CompanyService)(nil)

// defaultCategories builds the fixed category set seeded on first access.
func defaultCategories(companyID, creatorUserID string, now time.Time) []domain.Category {
	seed := []struct {
		name  string
		kind  domain.CategoryKind
		color string
	}{
		{"Salário", domain.CategoryIncome, "#16a34a"},
		{"Freelance", domain.CategoryIncome, "#2563eb"},
		{"Investimentos", domain.CategoryIncome, "#7c3aed"},
		{"Alimentação", domain.CategoryExpense, "#dc2626"},
		{"Transporte", domain.CategoryExpense, "#ea580c"},
		{"Moradia", domain.CategoryExpense, "#ca8a04"},
		{"Saúde", domain.CategoryExpense, "#0891b2"},
		{"Lazer", domain.CategoryExpense, "#db2777"},
		{"Outros", domain.CategoryBoth, "#6b7280"},
	}

	categories := make([]domain.Category, len(seed))
	for i, c := range seed {
		categories[i] = domain.Category{
			CategoryID: uuid.NewString(),
			CompanyID:  companyID,
			Name:       c.name,
			Kind:       c.kind,
			Color:      c.color,
			IsActive:   true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}
	return categories
}

// EnsureCompany returns the user's company, provisioning it on first access.
// The insert is guarded by the unique owner constraint, so concurrent calls
// for the same user converge on a single company. Only the call that actually
// inserted the row seeds the default categories.
func (s *CompanyService) EnsureCompany(ctx context.Context, userID string, nameHint string) (*domain.Company, error) {
	existing, err := s.companyRepo.FindCompanyByOwnerUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up company by owner")
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}

	name := "Minha Empresa"
	if nameHint != "" {
		name = "Empresa de " + nameHint
	}

	now := time.Now()
	company := domain.Company{
		CompanyID:    uuid.NewString(),
		Name:         name,
		CurrencyCode: defaultCurrencyCode,
		TimeZone:     defaultTimeZone,
		OwnerUserID:  userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	inserted, err := s.companyRepo.SaveCompanyIfAbsent(ctx, company)
	if err != nil {
		s.LogError(ctx, err, "Failed to provision company", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to provision company: %w", err)
	}

	if inserted {
		if err := s.categoryRepo.SaveCategories(ctx, defaultCategories(company.CompanyID, userID, now)); err != nil {
			// The company is usable without the seed; categories can still be
			// created manually.
			s.LogError(ctx, err, "Failed to seed default categories", slog.String("company_id", company.CompanyID))
		} else {
			s.LogInfo(ctx, "Company provisioned with default categories", slog.String("company_id", company.CompanyID))
		}
	}

	// Refetch to cover the case where a concurrent request won the insert.
	return s.companyRepo.FindCompanyByOwnerUserID(ctx, userID)
}

// UpdateCompany applies the provided settings to the user's company.
func (s *CompanyService) UpdateCompany(ctx context.Context, userID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.EnsureCompany(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.CNPJ != nil {
		company.CNPJ = *req.CNPJ
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.CurrencyCode != nil {
		company.CurrencyCode = *req.CurrencyCode
	}
	if req.TimeZone != nil {
		if _, err := time.LoadLocation(*req.TimeZone); err != nil {
			return nil, apperrors.NewValidationFailedError("unknown time zone " + *req.TimeZone)
		}
		company.TimeZone = *req.TimeZone
	}
	if req.MonthlySpendingLimit != nil {
		if req.MonthlySpendingLimit.IsNegative() {
			return nil, apperrors.NewValidationFailedError("monthly spending limit must not be negative")
		}
		company.MonthlySpendingLimit = req.MonthlySpendingLimit
	}

	now := time.Now()
	company.LastUpdatedAt = now
	company.LastUpdatedBy = userID

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("company_id", company.CompanyID))
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}
