package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portsrepo "github.com/fintrackhq/fintrack-backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
	"github.com/fintrackhq/fintrack-backend/internal/utils"
)

// userService manages user accounts and refresh-token credentials.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a local user. The email must not already be in use.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", "error", err)
		return nil, err
	}

	logger.Info("User registered", "user_id", user.UserID)
	return &user, nil
}

// AuthenticateUser verifies local credentials. The same error comes back for
// an unknown email and a wrong password.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	// OAuth users carry no password hash, so the comparison fails for them too.
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// FindOrCreateGoogleUser resolves a verified Google identity to a local
// user, creating one on first sign-in.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, email, name, providerUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByProvider(ctx, domain.ProviderGoogle, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	// An existing local account with the same email stays separate; Google
	// identity matching is strictly on the provider subject.
	now := time.Now().UTC()
	userID := uuid.NewString()
	newUser := domain.User{
		UserID:         userID,
		Name:           name,
		Email:          email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: providerUserID,
		EmailVerified:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		logger.Error("Failed to save Google user", "error", err)
		return nil, err
	}

	logger.Info("Google user created", "user_id", newUser.UserID)
	return &newUser, nil
}

// GetUserByID retrieves a user profile.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateUser applies a partial profile update.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	now := time.Now().UTC()
	user.LastUpdatedAt = now
	user.LastUpdatedBy = userID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser soft-deletes the user account.
func (s *userService) DeactivateUser(ctx context.Context, userID string) error {
	return s.userRepo.MarkUserDeleted(ctx, userID, time.Now().UTC())
}

// IssueRefreshToken mints a fresh opaque token, persists its hash, and
// returns the plaintext for the cookie. Issuing a new token invalidates the
// previous one.
func (s *userService) IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateRefreshToken()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	hash := utils.HashRefreshToken(s.cfg.RefreshTokenSecret, token)
	if err := s.userRepo.UpdateRefreshTokenHash(ctx, userID, hash, now); err != nil {
		return "", err
	}
	return token, nil
}

// RedeemRefreshToken verifies a presented refresh token against the stored hash.
func (s *userService) RedeemRefreshToken(ctx context.Context, userID, token string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.VerifyRefreshToken(s.cfg.RefreshTokenSecret, token, user.RefreshTokenHash) {
		return nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
	}

	return user, nil
}

// ClearRefreshToken drops the stored refresh token hash on logout.
func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshTokenHash(ctx, userID, "", time.Now().UTC())
}
