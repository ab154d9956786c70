package auth

import (
	"context"
	"time"
)

// TokenService defines operations for managing bearer authentication tokens.
// Tokens are self-contained: verification depends only on the token bytes,
// the signing secret, and the clock, so the server holds no session state.
type TokenService interface {
	// GenerateToken creates a signed token embedding the given principal.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns the claims containing the principal if the token is valid,
	// ErrExpiredToken if it has expired, or ErrInvalidToken for any other
	// failure (malformed payload, bad signature, wrong algorithm).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for issued tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// Username is the principal the token was issued for. It is an opaque
	// identifier; no user registry exists to validate it against.
	Username string `json:"username,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
