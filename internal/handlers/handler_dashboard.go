package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
)

// dashboardHandler handles HTTP requests for the dashboard aggregations.
type dashboardHandler struct {
	dashboardService portssvc.DashboardService
	companyService   portssvc.CompanySvcFacade
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardService, companyService portssvc.CompanySvcFacade) {
	h := &dashboardHandler{
		dashboardService: dashboardService,
		companyService:   companyService,
	}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/metrics", h.getMetrics)
		dashboard.GET("/evolution", h.getEvolution)
		dashboard.GET("/distribution", h.getDistribution)
		dashboard.GET("/recent", h.getRecent)
	}
}

// getMetrics godoc
// @Summary Current month metrics
// @Description Income, expense and net for the current calendar month, plus the company-wide pending count.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardMetricsResponse
// @Security BearerAuth
// @Router /dashboard/metrics [get]
func (h *dashboardHandler) getMetrics(c *gin.Context) {
	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	metrics, err := h.dashboardService.GetMetrics(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute metrics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardMetricsResponse(metrics))
}

// getEvolution godoc
// @Summary Monthly evolution
// @Description Per-month income and expense totals over a trailing window. Months without confirmed transactions are omitted.
// @Tags dashboard
// @Produce json
// @Param months query int false "Window size in months, 1 to 24 (default 6)"
// @Success 200 {array} dto.MonthBucketResponse
// @Failure 400 {object} ErrorResponse "months out of range"
// @Security BearerAuth
// @Router /dashboard/evolution [get]
func (h *dashboardHandler) getEvolution(c *gin.Context) {
	var params dto.EvolutionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be between 1 and 24"})
		return
	}

	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	buckets, err := h.dashboardService.GetMonthlyEvolution(c.Request.Context(), companyID, params.Months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute evolution"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMonthBucketResponse(buckets))
}

// getDistribution godoc
// @Summary Category distribution
// @Description Current month's confirmed transactions grouped by category. Uncategorized transactions form their own bucket.
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.CategoryTotalResponse
// @Security BearerAuth
// @Router /dashboard/distribution [get]
func (h *dashboardHandler) getDistribution(c *gin.Context) {
	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	totals, err := h.dashboardService.GetCategoryDistribution(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute distribution"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryTotalResponse(totals))
}

// getRecent godoc
// @Summary Recent transactions
// @Description The five most recently created transactions.
// @Tags dashboard
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /dashboard/recent [get]
func (h *dashboardHandler) getRecent(c *gin.Context) {
	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	transactions, err := h.dashboardService.GetRecentTransactions(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list recent transactions"})
		return
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = dto.ToTransactionResponse(&transaction)
	}
	c.JSON(http.StatusOK, responses)
}
