package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalSvc portssvc.GoalSvcFacade
}

func newGoalHandler(goalSvc portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalSvc: goalSvc}
}

// registerGoalRoutes registers routes related to goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalSvc portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalSvc)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	goal, err := h.goalSvc.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create goal")
		return
	}

	logger.Info("Goal created", slog.String("goal_id", goal.GoalID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List goals
// @Tags goals
// @Produce  json
// @Param   status query string false "Filter by status" Enums(IN_PROGRESS, COMPLETED, CANCELLED)
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListGoalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	goals, err := h.goalSvc.ListGoals(c.Request.Context(), userID, params.Status)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: dto.ToGoalResponses(goals)})
}

// getGoal godoc
// @Summary Get a goal by ID
// @Tags goals
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	goal, err := h.goalSvc.GetGoalByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// updateGoal godoc
// @Summary Update a goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   id path string true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	goal, err := h.goalSvc.UpdateGoal(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update goal")
		return
	}

	logger.Info("Goal updated", slog.String("goal_id", goal.GoalID))
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Produce  json
// @Param   id path string true "Goal ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.goalSvc.DeleteGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete goal")
		return
	}

	logger.Info("Goal deleted", slog.String("goal_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
