package repositories

import (
	"context"
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client scoped to a company.
	FindClientByID(ctx context.Context, companyID string, clientID string) (*domain.Client, error)

	// ListClients retrieves all active clients of a company.
	ListClients(ctx context.Context, companyID string) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientLifecycleManager defines operations for managing client lifecycle
type ClientLifecycleManager interface {
	// MarkClientDeleted deactivates a client (soft delete).
	MarkClientDeleted(ctx context.Context, companyID string, clientID string, deletedAt time.Time, deletedBy string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
// This is a facade for clients that need access to all operations
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientLifecycleManager
}
