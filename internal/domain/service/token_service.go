// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the operations for issuing and validating the
// dashboard's session tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for the
	// given subject (the Firebase uid) and roles.
	GenerateTokens(subject string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
