package services

import (
	"context"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a category scoped to a company.
	GetCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all active categories of a company.
	ListCategories(ctx context.Context, companyID string) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	// CreateCategory creates a new category in the company.
	CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, companyID string, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)
}

// CategoryLifecycleSvc defines operations for managing category lifecycle
type CategoryLifecycleSvc interface {
	// DeleteCategory deactivates a category (soft delete).
	DeleteCategory(ctx context.Context, companyID string, categoryID string, requestingUserID string) error
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
	CategoryLifecycleSvc
}
