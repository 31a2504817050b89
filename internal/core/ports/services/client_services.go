package services

import (
	"context"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client scoped to a company.
	GetClientByID(ctx context.Context, companyID string, clientID string) (*domain.Client, error)

	// ListClients retrieves all active clients of a company.
	ListClients(ctx context.Context, companyID string) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient creates a new client in the company.
	CreateClient(ctx context.Context, companyID string, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// UpdateClient updates an existing client.
	UpdateClient(ctx context.Context, companyID string, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error)
}

// ClientLifecycleSvc defines operations for managing client lifecycle
type ClientLifecycleSvc interface {
	// DeleteClient deactivates a client (soft delete).
	DeleteClient(ctx context.Context, companyID string, clientID string, requestingUserID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	ClientLifecycleSvc
}
