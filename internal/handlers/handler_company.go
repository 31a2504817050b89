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

// companyHandler handles HTTP requests related to the caller's company.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
	userService    portssvc.UserReaderSvc
}

// registerCompanyRoutes registers routes related to the company.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade, userService portssvc.UserReaderSvc) {
	h := &companyHandler{
		companyService: companyService,
		userService:    userService,
	}

	company := rg.Group("/company")
	{
		company.GET("", h.getCompany)
		company.PUT("", h.updateCompany)
	}
}

// getCompany godoc
// @Summary Get the caller's company
// @Description Returns the caller's company, provisioning it with default categories on first access.
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to resolve company"
// @Security BearerAuth
// @Router /company [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// Name the company after the user when it gets provisioned here.
	nameHint := ""
	if user, err := h.userService.GetUserByID(c.Request.Context(), userID); err == nil {
		nameHint = user.Name
	}

	company, err := h.companyService.EnsureCompany(c.Request.Context(), userID, nameHint)
	if err != nil {
		logger.Error("Failed to ensure company", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve company"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// updateCompany godoc
// @Summary Update company settings
// @Description Updates name, contact data, currency or the monthly spending limit.
// @Tags company
// @Accept json
// @Produce json
// @Param company body dto.UpdateCompanyRequest true "Company settings"
// @Success 200 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to update company"
// @Security BearerAuth
// @Router /company [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update company", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update company"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}
