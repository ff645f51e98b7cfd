package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
)

const oauthStateCookie = "oauthstate"

// googleOAuthHandler drives the browser-facing half of Google sign-in.
type googleOAuthHandler struct {
	googleSvc portssvc.GoogleOAuthSvcFacade
	authH     *authHandler
}

// registerGoogleOAuthRoutes registers the Google sign-in routes under the auth group.
func registerGoogleOAuthRoutes(auth *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &googleOAuthHandler{
		googleSvc: services.GoogleOAuthService,
		authH:     newAuthHandler(services.UserService, services.TokenService, cfg),
	}

	google := auth.Group("/google")
	{
		google.GET("/login", h.beginLogin)
		google.GET("/callback", h.callback)
	}
}

// beginLogin godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen with a CSRF state cookie
// @Tags auth
// @Success 307
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) beginLogin(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start Google sign-in"})
		return
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	// Short-lived, sign-in flow only.
	c.SetCookie(oauthStateCookie, state, 600, "/api/v1/auth/google", "", h.authH.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleSvc.GetAuthCodeURL(state))
}

// callback godoc
// @Summary Complete Google sign-in
// @Description Validates the state, exchanges the authorization code, and returns a session
// @Tags auth
// @Produce  json
// @Param   state query string true "CSRF state"
// @Param   code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "State mismatch or invalid code"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("Google OAuth state mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/api/v1/auth/google", "", h.authH.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization code missing"})
		return
	}

	user, err := h.googleSvc.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to complete Google sign-in")
		return
	}

	resp, err := h.authH.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to issue session after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session"})
		return
	}

	logger.Info("Google sign-in completed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}
