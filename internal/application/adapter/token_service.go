package adapter

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed, time-limited token bound to the
	// given user id.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken verifies signature and expiry and returns the
	// claims. Any failure (malformed, expired, bad signature) is reported as
	// a single indistinguishable error.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
