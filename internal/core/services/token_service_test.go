package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/services"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
)

func tokenConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key-for-token-service",
		JWTIssuer:         "fintrack-test",
		JWTExpiryDuration: expiry,
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(tokenConfig(time.Hour))
	userID := uuid.NewString()

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	svc := services.NewTokenService(tokenConfig(-time.Minute))

	token, err := svc.GenerateToken(context.Background(), uuid.NewString())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_WrongSecretRejected(t *testing.T) {
	issuer := services.NewTokenService(tokenConfig(time.Hour))
	verifier := services.NewTokenService(&config.Config{
		JWTSecret:         "a-completely-different-secret",
		JWTIssuer:         "fintrack-test",
		JWTExpiryDuration: time.Hour,
	})

	token, err := issuer.GenerateToken(context.Background(), uuid.NewString())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_GarbageRejected(t *testing.T) {
	svc := services.NewTokenService(tokenConfig(time.Hour))

	_, err := svc.ValidateToken("not.a.jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
