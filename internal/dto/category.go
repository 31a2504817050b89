package dto

import (
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required,max=255"`
	Kind  domain.CategoryKind `json:"kind" binding:"required,oneof=INCOME EXPENSE BOTH"`
	Color string              `json:"color"`
	Icon  string              `json:"icon"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name  *string              `json:"name" binding:"omitempty,max=255"`
	Kind  *domain.CategoryKind `json:"kind" binding:"omitempty,oneof=INCOME EXPENSE BOTH"`
	Color *string              `json:"color"`
	Icon  *string              `json:"icon"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string              `json:"categoryID"`
	Name          string              `json:"name"`
	Kind          domain.CategoryKind `json:"kind"`
	Color         string              `json:"color"`
	Icon          string              `json:"icon"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		Name:          cat.Name,
		Kind:          cat.Kind,
		Color:         cat.Color,
		Icon:          cat.Icon,
		IsActive:      cat.IsActive,
		CreatedAt:     cat.CreatedAt,
		LastUpdatedAt: cat.LastUpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to a slice of CategoryResponse DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
