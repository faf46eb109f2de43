// Package error defines domain-specific errors for the business admin portal.
package error

import "errors"

// Ledger (transaction) domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the ledger.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is neither income nor expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when a date is not a valid YYYY-MM-DD calendar date.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when an amount is not numeric or is negative.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidPaidStatus is returned when an income paid status is not full, partial or pending.
	ErrInvalidPaidStatus = errors.New("invalid paid status")

	// ErrInvalidPaymentMethod is returned when the payment method is not recognised.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrMissingEntrepreneurReference is returned when a transaction has no entrepreneur.
	ErrMissingEntrepreneurReference = errors.New("transaction must reference an entrepreneur")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrInvalidTransactionID is returned when an imported transaction carries a malformed id.
	ErrInvalidTransactionID = errors.New("invalid transaction id")

	// ErrUnknownCollection is returned when subscribing to a collection that does not exist.
	ErrUnknownCollection = errors.New("unknown ledger collection")
)

// TransactionErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "LDG-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "LDG-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "LDG-010003"
	ErrCodeInvalidPaidStatus        TransactionErrorCode = "LDG-010004"
	ErrCodeInvalidPaymentMethod     TransactionErrorCode = "LDG-010005"
	ErrCodeMissingEntrepreneurRef   TransactionErrorCode = "LDG-010006"
	ErrCodeNotesTooLong             TransactionErrorCode = "LDG-010007"
	ErrCodeMissingTransactionFields TransactionErrorCode = "LDG-010008"
	ErrCodeInvalidTransactionID     TransactionErrorCode = "LDG-010009"
	ErrCodeUnknownCollection        TransactionErrorCode = "LDG-010010"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "LDG-020001"
)

// TransactionError represents a ledger error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
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

// IsInvalidInput reports whether err is a ledger validation failure.
func IsInvalidInput(err error) bool {
	var txErr *TransactionError
	if errors.As(err, &txErr) {
		return txErr.Code != ErrCodeTransactionNotFound
	}
	var anErr *AnalyticsError
	return errors.As(err, &anErr)
}
