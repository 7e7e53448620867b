package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is absent or belongs to
	// a different user; the two cases are indistinguishable.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryType is returned when the category type is outside the enum.
	ErrInvalidCategoryType = errors.New("invalid category type")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryType CategoryErrorCode = "CAT-010001"

	// Ownership errors (02XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
