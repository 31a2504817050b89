package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
	"github.com/pjfinancas/financas_backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	companyService     portssvc.CompanySvcFacade
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, companyService portssvc.CompanySvcFacade) {
	h := &transactionHandler{
		transactionService: transactionService,
		companyService:     companyService,
	}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// toListFilters converts validated query params into repository filters.
// Dates were already validated by the binding, so parse errors are ignored.
func toListFilters(params dto.ListTransactionsParams) portsrepo.TransactionListFilters {
	filters := portsrepo.TransactionListFilters{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		ClientID:   params.ClientID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.Kind != nil {
		kind := domain.TransactionKind(*params.Kind)
		filters.Kind = &kind
	}
	if params.Status != nil {
		status := domain.TransactionStatus(*params.Status)
		filters.Status = &status
	}
	if params.DateFrom != nil {
		if from, err := time.Parse(dto.DateLayout, *params.DateFrom); err == nil {
			filters.DateFrom = &from
		}
	}
	if params.DateTo != nil {
		if to, err := time.Parse(dto.DateLayout, *params.DateTo); err == nil {
			filters.DateTo = &to
		}
	}
	return filters
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions filtered by kind, status, account, category, client and date range. Returns the page and the total match count.
// @Tags transactions
// @Produce json
// @Param kind query string false "INCOME or EXPENSE"
// @Param status query string false "PENDING, CONFIRMED or CANCELLED"
// @Param accountID query string false "Account ID"
// @Param categoryID query string false "Category ID"
// @Param clientID query string false "Client ID"
// @Param dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	items, total, err := h.transactionService.ListTransactions(c.Request.Context(), companyID, toListFilters(params))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(items, total))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Creates a transaction (status defaults to CONFIRMED) and runs the spending limit check.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), companyID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update. Any status transition is allowed.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction permanently.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	_, companyID, ok := requireCompany(c, h.companyService)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), companyID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}
