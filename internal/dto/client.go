package dto

import (
	"time"

	"github.com/pjfinancas/financas_backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	TaxID   string `json:"taxID"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdateClientRequest defines the data allowed for updating a client.
type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	TaxID   *string `json:"taxID"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	TaxID         string    `json:"taxID"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      client.ClientID,
		Name:          client.Name,
		Email:         client.Email,
		Phone:         client.Phone,
		TaxID:         client.TaxID,
		Address:       client.Address,
		Notes:         client.Notes,
		IsActive:      client.IsActive,
		CreatedAt:     client.CreatedAt,
		LastUpdatedAt: client.LastUpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to a slice of ClientResponse DTOs
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, client := range clients {
		res[i] = ToClientResponse(&client)
	}
	return res
}
