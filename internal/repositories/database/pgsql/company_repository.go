package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

var FULL_COMPANY_SELECT_QUERY = `
SELECT
	c.company_id, c.name, c.cnpj, c.email, c.phone, c.currency_code, c.time_zone,
	c.monthly_spending_limit, c.owner_user_id,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM companies c
`

// getCompanies private func to get companies from the select query filters
func (r *PgxCompanyRepository) getCompanies(ctx context.Context, filterQuery string, args ...any) ([]domain.Company, error) {
	query := FULL_COMPANY_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	defer rows.Close()
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Company{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect company rows", err)
	}
	return companies, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `WHERE c.company_id = $1`
	companies, err := r.getCompanies(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &companies[0], nil
}

func (r *PgxCompanyRepository) FindCompanyByOwnerUserID(ctx context.Context, ownerUserID string) (*domain.Company, error) {
	query := `WHERE c.owner_user_id = $1`
	companies, err := r.getCompanies(ctx, query, ownerUserID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &companies[0], nil
}

// SaveCompanyIfAbsent inserts the company unless the owner already has one.
// The unique constraint on owner_user_id makes concurrent provisioning safe.
func (r *PgxCompanyRepository) SaveCompanyIfAbsent(ctx context.Context, company domain.Company) (bool, error) {
	query := `
		INSERT INTO companies (
			company_id, name, cnpj, email, phone, currency_code, time_zone,
			monthly_spending_limit, owner_user_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (owner_user_id) DO NOTHING;
	`
	result, err := r.Pool.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.CNPJ,
		company.Email,
		company.Phone,
		company.CurrencyCode,
		company.TimeZone,
		company.MonthlySpendingLimit,
		company.OwnerUserID,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to save company for owner "+company.OwnerUserID, err)
	}
	return result.RowsAffected() > 0, nil
}

func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	query := `
		UPDATE companies
		SET name = $1, cnpj = $2, email = $3, phone = $4, currency_code = $5,
			time_zone = $6, monthly_spending_limit = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE company_id = $10;
	`
	result, err := r.Pool.Exec(ctx, query,
		company.Name,
		company.CNPJ,
		company.Email,
		company.Phone,
		company.CurrencyCode,
		company.TimeZone,
		company.MonthlySpendingLimit,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
		company.CompanyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company "+company.CompanyID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("company " + company.CompanyID + " not found")
	}
	return nil
}
