package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
)

// tokenService issues and verifies HS256 access tokens.
type tokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

// NewTokenService creates a new TokenService from configuration.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		duration: cfg.JWTExpiryDuration,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateToken mints an access token with the user ID as subject.
func (s *tokenService) GenerateToken(_ context.Context, userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a token and returns its subject user ID.
func (s *tokenService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: invalid token claims", apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
