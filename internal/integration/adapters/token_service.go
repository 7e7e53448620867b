// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/fincheck/backend/internal/application/adapter"
)

const tokenIssuer = "fincheck"

// tokenService implements the adapter.TokenService interface using HS256
// signed JWTs whose subject is the user id.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// GenerateAccessToken issues a signed token bound to the given user id.
func (s *tokenService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateAccessToken verifies signature and expiry and extracts the subject.
// Every failure mode collapses into one generic error so callers cannot
// distinguish a malformed token from an expired one.
func (s *tokenService) ValidateAccessToken(tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject in token: %w", err)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}
