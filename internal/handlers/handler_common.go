package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// requireCompany resolves the caller's user ID and company, provisioning the
// company on first access. Writes the error response itself when it fails.
func requireCompany(c *gin.Context, companyService portssvc.CompanyReaderSvc) (userID string, companyID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, found := middleware.GetUserIDFromCtx(c.Request.Context())
	if !found {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}

	company, err := companyService.EnsureCompany(c.Request.Context(), userID, "")
	if err != nil {
		logger.Error("Failed to resolve company for user")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve company"})
		return "", "", false
	}

	return userID, company.CompanyID, true
}
