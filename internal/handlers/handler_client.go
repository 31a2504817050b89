package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
	"github.com/pjfinancas/financas_backend/internal/middleware"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService  portssvc.ClientSvcFacade
	companyService portssvc.CompanySvcFacade
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, companyService portssvc.CompanySvcFacade) {
	h := &clientHandler{
		clientService:  clientService,
		companyService: companyService,
	}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.PUT("/:id", h.updateClient)
		clients.DELETE("/:id", h.deleteClient)
	}
}

// listClients godoc
// @Summary List active clients
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// createClient godoc
// @Summary Create a new client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), companyID, req, userID)
	if err != nil {
		logger.Error("Failed to create client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger.Error("Failed to update client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Deactivate a client
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete client"})
		return
	}

	c.Status(http.StatusNoContent)
}
