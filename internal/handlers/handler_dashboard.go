package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

// dashboardHandler serves the aggregate dashboard payload.
type dashboardHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade) {
	h := &dashboardHandler{reportingSvc: reportingSvc}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard
// @Description Returns balance totals, month and week income/expense sums, goal progress, active budgets, and recent transactions
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to assemble dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dashboard, err := h.reportingSvc.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assemble dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
