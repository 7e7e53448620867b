package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is absent or
	// belongs to a different user; the two cases are indistinguishable.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is outside the enum.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNonPositiveValue is returned when the transaction value is zero or negative.
	ErrNonPositiveValue = errors.New("transaction value must be positive")

	// ErrInvalidPeriod is returned when the month/year filter is out of range.
	ErrInvalidPeriod = errors.New("invalid month/year period")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeNonPositiveValue       TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidPeriod          TransactionErrorCode = "TXN-010003"

	// Ownership errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
