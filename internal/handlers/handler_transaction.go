package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to the ledger.
type transactionHandler struct {
	txnSvc portssvc.TransactionSvcFacade
}

func newTransactionHandler(txnSvc portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnSvc: txnSvc}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, txnSvc portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnSvc)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an INCOME or EXPENSE entry and updates the account balance atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input, unsupported type, or archived account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	txn, account, err := h.txnSvc.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, account))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves the user's transactions, date descending, with cursor pagination
// @Tags transactions
// @Produce  json
// @Param   accountId query string false "Filter by account"
// @Param   type query string false "Filter by type" Enums(INCOME, EXPENSE)
// @Param   category query string false "Filter by category"
// @Param   status query string false "Filter by status" Enums(PENDING, COMPLETED, CANCELLED)
// @Param   startDate query string false "Earliest occurrence date (RFC 3339)"
// @Param   endDate query string false "Latest occurrence date (RFC 3339)"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or cursor"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	transactions, nextToken, err := h.txnSvc.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, account, err := h.txnSvc.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, account))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update; changing amount, type, or account reconciles balances atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	txn, account, err := h.txnSvc.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn, account))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the entry and reverses its balance contribution atomically
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.DeleteTransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.txnSvc.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", c.Param("id")))
	c.JSON(http.StatusOK, dto.DeleteTransactionResponse{Message: "Transaction deleted"})
}
