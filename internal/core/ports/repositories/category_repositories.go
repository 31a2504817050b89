package repositories

import (
	"context"
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category scoped to a company.
	FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all active categories of a company.
	ListCategories(ctx context.Context, companyID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SaveCategories persists a batch of new categories.
	SaveCategories(ctx context.Context, categories []domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// CategoryLifecycleManager defines operations for managing category lifecycle
type CategoryLifecycleManager interface {
	// MarkCategoryDeleted deactivates a category (soft delete).
	MarkCategoryDeleted(ctx context.Context, companyID string, categoryID string, deletedAt time.Time, deletedBy string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
// This is a facade for clients that need access to all operations
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
	CategoryLifecycleManager
}
