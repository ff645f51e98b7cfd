package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is a private key type for request-context values.
// Using a custom type prevents collisions.
type contextKey string

const (
	userIDKey    = contextKey("userID")
	loggerCtxKey = contextKey("logger")
)

// GetUserIDFromContext retrieves the authenticated user ID set by the auth
// middleware. The boolean reports whether one was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context. It falls back to the default logger when none was injected.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if v := ctx.Value(loggerCtxKey); v != nil {
		if logger, ok := v.(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}

// WithLogger returns a context carrying the given logger under the key
// GetLoggerFromCtx reads.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}
