package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
)

// loginRateLimit caps credential attempts per client IP.
const loginRateLimit = "5-M"

// authHandler handles registration, login, and the refresh token lifecycle.
type authHandler struct {
	userSvc  portssvc.UserSvcFacade
	tokenSvc portssvc.TokenSvcFacade
	cfg      *config.Config
}

func newAuthHandler(userSvc portssvc.UserSvcFacade, tokenSvc portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userSvc:  userSvc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
	}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.UserService, services.TokenService, cfg)

	rate, err := limiter.NewRateFromFormatted(loginRateLimit)
	if err != nil {
		panic(err)
	}
	loginLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
	}

	registerGoogleOAuthRoutes(auth, cfg, services)
}

// issueSession mints an access token, rotates the refresh token, and sets
// the refresh cookie. The cookie value is "<userID>:<token>" so the refresh
// endpoint can locate the stored hash without a session.
func (h *authHandler) issueSession(c *gin.Context, user *domain.User) (*dto.LoginResponse, error) {
	accessToken, err := h.tokenSvc.GenerateToken(c.Request.Context(), user.UserID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := h.userSvc.IssueRefreshToken(c.Request.Context(), user.UserID)
	if err != nil {
		return nil, err
	}

	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		user.UserID+":"+refreshToken,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)

	return &dto.LoginResponse{
		Token: accessToken,
		User:  dto.ToUserResponse(user),
	}, nil
}

// refreshCookieParts splits the refresh cookie into user ID and token.
func (h *authHandler) refreshCookieParts(c *gin.Context) (string, string, bool) {
	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(cookie, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// clearRefreshCookie expires the refresh cookie on the client.
func (h *authHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// register godoc
// @Summary Register a new user
// @Description Creates a local user account and returns a session
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	user, err := h.userSvc.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}

	resp, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to issue session after registration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session"})
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, resp)
}

// login godoc
// @Summary Log in with email and password
// @Description Verifies local credentials and returns a session. Rate limited per IP.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, logger, err)
		return
	}

	user, err := h.userSvc.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}

	resp, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to issue session after login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Refresh the access token
// @Description Redeems the refresh cookie for a new access token and rotates the refresh token
// @Tags auth
// @Produce  json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Missing or invalid refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, token, ok := h.refreshCookieParts(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token missing"})
		return
	}

	user, err := h.userSvc.RedeemRefreshToken(c.Request.Context(), userID, token)
	if err != nil {
		h.clearRefreshCookie(c)
		respondServiceError(c, logger, err, "Failed to refresh session")
		return
	}

	resp, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to rotate session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session"})
		return
	}

	logger.Info("Session refreshed", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the cookie
// @Tags auth
// @Produce  json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if userID, _, ok := h.refreshCookieParts(c); ok {
		if err := h.userSvc.ClearRefreshToken(c.Request.Context(), userID); err != nil {
			// The cookie is cleared regardless; a stale hash only blocks reuse.
			logger.Warn("Failed to clear refresh token", slog.String("error", err.Error()))
		}
	}
	h.clearRefreshCookie(c)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
