package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCategoryRepository implements portsrepo.CategoryRepositoryFacade
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

var FULL_CATEGORY_SELECT_QUERY = `
SELECT
	c.category_id, c.company_id, c.name, c.kind, c.color, c.icon, c.is_active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM categories c
`

const insertCategoryQuery = `
	INSERT INTO categories (
		category_id, company_id, name, kind, color, icon, is_active,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

// getCategories private func to get categories from the select query filters
func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	query := FULL_CATEGORY_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	query := `WHERE c.company_id = $1 AND c.category_id = $2`
	categories, err := r.getCategories(ctx, query, companyID, categoryID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	query := `WHERE c.company_id = $1 AND c.is_active = true ORDER BY c.name`
	return r.getCategories(ctx, query, companyID)
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	_, err := r.Pool.Exec(ctx, insertCategoryQuery,
		category.CategoryID,
		category.CompanyID,
		category.Name,
		category.Kind,
		category.Color,
		category.Icon,
		category.IsActive,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save category "+category.CategoryID, err)
	}
	return nil
}

// SaveCategories inserts a batch of categories in a single round trip.
func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, category := range categories {
		batch.Queue(insertCategoryQuery,
			category.CategoryID,
			category.CompanyID,
			category.Name,
			category.Kind,
			category.Color,
			category.Icon,
			category.IsActive,
			category.CreatedAt,
			category.CreatedBy,
			category.LastUpdatedAt,
			category.LastUpdatedBy,
		)
	}
	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range categories {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to save category batch", err)
		}
	}
	return nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $1, kind = $2, color = $3, icon = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $7 AND category_id = $8;
	`
	result, err := r.Pool.Exec(ctx, query,
		category.Name,
		category.Kind,
		category.Color,
		category.Icon,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
		category.CompanyID,
		category.CategoryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category "+category.CategoryID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + category.CategoryID + " not found")
	}
	return nil
}

func (r *PgxCategoryRepository) MarkCategoryDeleted(ctx context.Context, companyID string, categoryID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE categories
		SET is_active = false, last_updated_at = $1, last_updated_by = $2
		WHERE company_id = $3 AND category_id = $4 AND is_active = true;
	`
	result, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, companyID, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark category deleted "+categoryID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + categoryID + " not found")
	}
	return nil
}
