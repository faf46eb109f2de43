// Package error defines domain-specific errors for the business admin portal.
package error

import "errors"

// Entrepreneur domain errors.
var (
	// ErrEntrepreneurNotFound is returned when an entrepreneur is not found.
	ErrEntrepreneurNotFound = errors.New("entrepreneur not found")

	// ErrMissingEntrepreneurName is returned when the entrepreneur name is blank.
	ErrMissingEntrepreneurName = errors.New("entrepreneur name is required")

	// ErrInvalidStartDate is returned when the start date is not a valid calendar date.
	ErrInvalidStartDate = errors.New("invalid start date")
)

// EntrepreneurErrorCode defines error codes for entrepreneur errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntrepreneurErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingEntrepreneurName EntrepreneurErrorCode = "ENT-010001"
	ErrCodeInvalidStartDate        EntrepreneurErrorCode = "ENT-010002"
	ErrCodeMissingEntrepreneurData EntrepreneurErrorCode = "ENT-010003"

	// Lookup errors (02XXXX)
	ErrCodeEntrepreneurNotFound EntrepreneurErrorCode = "ENT-020001"
)

// EntrepreneurError represents an entrepreneur error with code and message.
type EntrepreneurError struct {
	Code    EntrepreneurErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntrepreneurError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntrepreneurError) Unwrap() error {
	return e.Err
}

// NewEntrepreneurError creates a new EntrepreneurError with the given code and message.
func NewEntrepreneurError(code EntrepreneurErrorCode, message string, err error) *EntrepreneurError {
	return &EntrepreneurError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
