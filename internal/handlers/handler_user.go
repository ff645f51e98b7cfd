package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

// userHandler handles HTTP requests for the authenticated user's profile.
type userHandler struct {
	userSvc portssvc.UserSvcFacade
}

func newUserHandler(userSvc portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userSvc: userSvc}
}

// registerUserRoutes registers profile routes.
func registerUserRoutes(rg *gin.RouterGroup, userSvc portssvc.UserSvcFacade) {
	h := newUserHandler(userSvc)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getProfile)
		users.PUT("/me", h.updateProfile)
		users.DELETE("/me", h.deactivateProfile)
	}
}

// getProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept  json
// @Produce  json
// @Param   profile body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	user, err := h.userSvc.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update profile")
		return
	}

	logger.Info("Profile updated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deactivateProfile godoc
// @Summary Deactivate the authenticated user's account
// @Tags users
// @Produce  json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [delete]
func (h *userHandler) deactivateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.userSvc.DeactivateUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate account")
		return
	}

	logger.Info("User deactivated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"message": "Account deactivated"})
}
