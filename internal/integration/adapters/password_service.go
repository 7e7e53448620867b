// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fincheck/backend/internal/application/adapter"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

const (
	// bcryptCost is the fixed work factor for password hashing.
	bcryptCost = 12
	// minPasswordLength is the minimum required password length.
	minPasswordLength = 8
)

// passwordService implements the adapter.PasswordService interface.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plain text password using bcrypt with cost 12.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength checks the minimum requirements. Failures wrap
// ErrWeakPassword so callers can match with errors.Is.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", domainerror.ErrWeakPassword, minPasswordLength)
	}
	return nil
}
