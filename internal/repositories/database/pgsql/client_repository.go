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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

var FULL_CLIENT_SELECT_QUERY = `
SELECT
	cl.client_id, cl.company_id, cl.name, cl.email, cl.phone, cl.tax_id,
	cl.address, cl.notes, cl.is_active,
	cl.created_at, cl.created_by, cl.last_updated_at, cl.last_updated_by
FROM clients cl
`

// getClients private func to get clients from the select query filters
func (r *PgxClientRepository) getClients(ctx context.Context, filterQuery string, args ...any) ([]domain.Client, error) {
	query := FULL_CLIENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	defer rows.Close()
	clients, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Client{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect client rows", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, companyID string, clientID string) (*domain.Client, error) {
	query := `WHERE cl.company_id = $1 AND cl.client_id = $2`
	clients, err := r.getClients(ctx, query, companyID, clientID)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &clients[0], nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, companyID string) ([]domain.Client, error) {
	query := `WHERE cl.company_id = $1 AND cl.is_active = true ORDER BY cl.name`
	return r.getClients(ctx, query, companyID)
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (
			client_id, company_id, name, email, phone, tax_id, address, notes, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.CompanyID,
		client.Name,
		client.Email,
		client.Phone,
		client.TaxID,
		client.Address,
		client.Notes,
		client.IsActive,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save client "+client.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, tax_id = $4, address = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE company_id = $9 AND client_id = $10;
	`
	result, err := r.Pool.Exec(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.TaxID,
		client.Address,
		client.Notes,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
		client.CompanyID,
		client.ClientID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update client "+client.ClientID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("client " + client.ClientID + " not found")
	}
	return nil
}

func (r *PgxClientRepository) MarkClientDeleted(ctx context.Context, companyID string, clientID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE clients
		SET is_active = false, last_updated_at = $1, last_updated_by = $2
		WHERE company_id = $3 AND client_id = $4 AND is_active = true;
	`
	result, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, companyID, clientID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark client deleted "+clientID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("client " + clientID + " not found")
	}
	return nil
}
