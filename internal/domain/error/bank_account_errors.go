package error

import "errors"

// Bank account domain errors.
var (
	// ErrBankAccountNotFound is returned when a bank account is absent or
	// belongs to a different user. The two cases are indistinguishable so
	// other users' resources are never revealed.
	ErrBankAccountNotFound = errors.New("bank account not found")

	// ErrInvalidBankAccountType is returned when the account type is outside the enum.
	ErrInvalidBankAccountType = errors.New("invalid bank account type")

	// ErrInvalidColorFormat is returned when the color is not a hex string.
	ErrInvalidColorFormat = errors.New("invalid color format")
)

// BankAccountErrorCode defines error codes for bank account errors.
// Format: ACCT-XXYYYY where XX is category and YYYY is specific error.
type BankAccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBankAccountType BankAccountErrorCode = "ACCT-010001"
	ErrCodeInvalidColorFormat     BankAccountErrorCode = "ACCT-010002"

	// Ownership errors (02XXXX)
	ErrCodeBankAccountNotFound BankAccountErrorCode = "ACCT-020001"
)

// BankAccountError represents a bank account error with code and message.
type BankAccountError struct {
	Code    BankAccountErrorCode
	Message string
	Err     error
}

func (e *BankAccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BankAccountError) Unwrap() error {
	return e.Err
}

// NewBankAccountError creates a new BankAccountError with the given code and message.
func NewBankAccountError(code BankAccountErrorCode, message string, err error) *BankAccountError {
	return &BankAccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
