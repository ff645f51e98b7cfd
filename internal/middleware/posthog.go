package middleware

import (
	"net/http"
	"strings"

	"github.com/fintrackhq/fintrack-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful authenticated API calls as events.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/accounts/:id" -> "api_v1_accounts_:id"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event from a handler for the current user.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path
	posthogClient.Enqueue(userID, eventName, properties)
}
