package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const refreshTokenBytes = 32

// GenerateRefreshToken produces a random opaque refresh token. Only the
// hash is persisted; the plaintext goes into the client cookie.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// HashRefreshToken returns the hex-encoded HMAC-SHA256 of a refresh token
// keyed with the server-side refresh secret, so a leaked database dump
// cannot be brute-forced into usable tokens without the key.
func HashRefreshToken(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyRefreshToken compares a presented token against a stored hash in
// constant time.
func VerifyRefreshToken(secret, token, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	presented := HashRefreshToken(secret, token)
	return subtle.ConstantTimeCompare([]byte(presented), []byte(storedHash)) == 1
}
