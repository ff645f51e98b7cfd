package repositories

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProvider retrieves a user by OAuth provider and provider subject.
	FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates mutable user fields (name, email verification).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshTokenHash stores (or clears, with empty hash) the user's refresh token hash.
	UpdateRefreshTokenHash(ctx context.Context, userID string, tokenHash string, now time.Time) error

	// MarkUserDeleted soft-deletes the user.
	MarkUserDeleted(ctx context.Context, userID string, now time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
