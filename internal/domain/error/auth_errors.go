// Package error defines domain-specific errors for the fincheck API.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrEmailAlreadyInUse is returned when attempting to sign up with an existing email.
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned when signin credentials are invalid.
	// Unknown email and wrong password deliberately collapse into this one
	// error so callers cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a bearer token is missing, malformed,
	// expired or carries a bad signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Signup errors (01XXXX)
	ErrCodeEmailInUse    AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010004"

	// Signin errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020002"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
