package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetSvc portssvc.BudgetSvcFacade
}

func newBudgetHandler(budgetSvc portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetSvc: budgetSvc}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetSvc portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetSvc)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/:id", h.getBudget)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a spending cap for a category, optionally scoped to one account
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Scoped account not found"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	budget, account, err := h.budgetSvc.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create budget")
		return
	}

	logger.Info("Budget created", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget, account))
}

// listBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce  json
// @Param   accountId query string false "Filter by scoped account"
// @Param   period query string false "Filter by period" Enums(WEEKLY, MONTHLY, YEARLY)
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	budgets, err := h.budgetSvc.ListBudgets(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list budgets")
		return
	}

	c.JSON(http.StatusOK, dto.ListBudgetsResponse{Budgets: dto.ToBudgetResponses(budgets)})
}

// getBudget godoc
// @Summary Get a budget by ID
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, account, err := h.budgetSvc.GetBudgetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget, account))
}

// updateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   budget body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	budget, account, err := h.budgetSvc.UpdateBudget(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update budget")
		return
	}

	logger.Info("Budget updated", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget, account))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetSvc.DeleteBudget(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete budget")
		return
	}

	logger.Info("Budget deleted", slog.String("budget_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}
