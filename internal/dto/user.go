package dto

import (
	"time"

	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
)

// RegisterRequest defines the data needed to create a local user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries local login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns a session token and the user profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RefreshResponse returns a rotated access token.
type RefreshResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest defines a partial profile update.
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID        string              `json:"userID"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	AuthProvider  domain.AuthProvider `json:"authProvider"`
	EmailVerified bool                `json:"emailVerified"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToUserResponse converts a domain.User.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		AuthProvider:  u.AuthProvider,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
