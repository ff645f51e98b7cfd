package services

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
)

// UserSvcFacade defines operations on user accounts and credentials.
type UserSvcFacade interface {
	// RegisterUser creates a local user with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// AuthenticateUser checks local credentials and returns the user on success.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
	// FindOrCreateGoogleUser resolves a Google identity to a local user,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, email, name, providerUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeactivateUser(ctx context.Context, userID string) error

	// IssueRefreshToken mints a new opaque refresh token for the user,
	// stores its hash, and returns the plaintext for the cookie.
	IssueRefreshToken(ctx context.Context, userID string) (string, error)
	// RedeemRefreshToken verifies a presented refresh token against the
	// stored hash and returns the user when it matches.
	RedeemRefreshToken(ctx context.Context, userID, token string) (*domain.User, error)
	// ClearRefreshToken invalidates the stored refresh token on logout.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// TokenSvcFacade issues and verifies access tokens.
type TokenSvcFacade interface {
	GenerateToken(ctx context.Context, userID string) (string, error)
	// ValidateToken returns the subject user ID of a valid token.
	ValidateToken(tokenString string) (string, error)
}

// GoogleOAuthSvcFacade drives the Google sign-in code flow.
type GoogleOAuthSvcFacade interface {
	// GetAuthCodeURL builds the consent-screen redirect URL for the given state.
	GetAuthCodeURL(state string) string
	// ExchangeCode swaps an authorization code for a verified Google
	// identity and resolves it to a local user.
	ExchangeCode(ctx context.Context, code string) (*domain.User, error)
}
