package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates input beyond 72 bytes; reject instead so two
// long passwords with a shared prefix can never collide.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the
// stored bcrypt hash. An empty hash never matches (OAuth-only users).
func CheckPasswordHash(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
