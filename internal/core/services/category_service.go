package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// Ensure CategoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

// GetCategoryByID retrieves a category scoped to a company.
func (s *CategoryService) GetCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
}

// ListCategories returns the active categories of a company.
func (s *CategoryService) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, companyID)
}

// CreateCategory creates a new category in the company. Kind is advisory and
// never enforced against transactions.
func (s *CategoryService) CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		Kind:       req.Kind,
		Color:      req.Color,
		Icon:       req.Icon,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory applies a partial update to a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, companyID string, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Kind != nil {
		category.Kind = *req.Kind
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

// DeleteCategory deactivates a category. Existing transactions keep pointing
// at it and keep aggregating under it.
func (s *CategoryService) DeleteCategory(ctx context.Context, companyID string, categoryID string, requestingUserID string) error {
	return s.categoryRepo.MarkCategoryDeleted(ctx, companyID, categoryID, time.Now(), requestingUserID)
}
