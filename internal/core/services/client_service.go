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

// ClientService handles business logic related to clients.
type ClientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// Ensure ClientService implements the portssvc.ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

// GetClientByID retrieves a client scoped to a company.
func (s *ClientService) GetClientByID(ctx context.Context, companyID string, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, companyID, clientID)
}

// ListClients returns the active clients of a company.
func (s *ClientService) ListClients(ctx context.Context, companyID string) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx, companyID)
}

// CreateClient creates a new client in the company.
func (s *ClientService) CreateClient(ctx context.Context, companyID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:  uuid.NewString(),
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		Address:   req.Address,
		Notes:     req.Notes,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

// UpdateClient applies a partial update to a client.
func (s *ClientService) UpdateClient(ctx context.Context, companyID string, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, companyID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.TaxID != nil {
		client.TaxID = *req.TaxID
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = requestingUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

// DeleteClient deactivates a client.
func (s *ClientService) DeleteClient(ctx context.Context, companyID string, clientID string, requestingUserID string) error {
	return s.clientRepo.MarkClientDeleted(ctx, companyID, clientID, time.Now(), requestingUserID)
}
