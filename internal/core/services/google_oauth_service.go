package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
)

// googleOAuthService drives the Google sign-in code flow and maps verified
// identities onto local users.
type googleOAuthService struct {
	oauthConfig *oauth2.Config
	userSvc     portssvc.UserSvcFacade
}

// NewGoogleOAuthService creates a new GoogleOAuthService.
func NewGoogleOAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userSvc: userSvc,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// GetAuthCodeURL builds the consent-screen redirect URL.
func (s *googleOAuthService) GetAuthCodeURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeCode swaps an authorization code for tokens, verifies the ID
// token signature and audience, and resolves the identity to a local user.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Warn("Google code exchange failed", "error", err)
		return nil, fmt.Errorf("%w: failed to exchange authorization code", apperrors.ErrUnauthorized)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: id_token missing from Google response", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		logger.Warn("Google ID token validation failed", "error", err)
		return nil, fmt.Errorf("%w: invalid Google ID token", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" || payload.Subject == "" {
		return nil, fmt.Errorf("%w: Google ID token missing required claims", apperrors.ErrUnauthorized)
	}
	if name == "" {
		name = email
	}

	return s.userSvc.FindOrCreateGoogleUser(ctx, email, name, payload.Subject)
}
