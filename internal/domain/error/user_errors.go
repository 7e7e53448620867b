package error

import "errors"

// ErrUserNotFound is returned when a user row is absent.
var ErrUserNotFound = errors.New("user not found")

// UserErrorCode defines error codes for user profile errors.
type UserErrorCode string

const (
	ErrCodeUserNotFound UserErrorCode = "USER-010001"
)

// UserError represents a user profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
