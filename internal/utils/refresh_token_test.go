package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-backend/internal/utils"
)

const refreshSecret = "test-refresh-hmac-key"

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	hash := utils.HashRefreshToken(refreshSecret, token)
	assert.NotEqual(t, token, hash)
	assert.True(t, utils.VerifyRefreshToken(refreshSecret, token, hash))
}

func TestRefreshTokensAreUnique(t *testing.T) {
	a, err := utils.GenerateRefreshToken()
	require.NoError(t, err)
	b, err := utils.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyRefreshToken_WrongToken(t *testing.T) {
	token, err := utils.GenerateRefreshToken()
	require.NoError(t, err)
	hash := utils.HashRefreshToken(refreshSecret, token)

	assert.False(t, utils.VerifyRefreshToken(refreshSecret, "some other token", hash))
}

func TestVerifyRefreshToken_WrongSecret(t *testing.T) {
	token, err := utils.GenerateRefreshToken()
	require.NoError(t, err)
	hash := utils.HashRefreshToken(refreshSecret, token)

	// A hash minted under one key must not verify under another.
	assert.NotEqual(t, hash, utils.HashRefreshToken("another-key", token))
	assert.False(t, utils.VerifyRefreshToken("another-key", token, hash))
}

func TestVerifyRefreshToken_EmptyHashRejectsEverything(t *testing.T) {
	assert.False(t, utils.VerifyRefreshToken(refreshSecret, "anything", ""))
	assert.False(t, utils.VerifyRefreshToken(refreshSecret, "", ""))
}
