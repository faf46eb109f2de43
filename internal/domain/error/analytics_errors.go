// Package error defines domain-specific errors for the business admin portal.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidRangeKey is returned when a named range is not one of 7d, 30d, 90d or all.
	ErrInvalidRangeKey = errors.New("range must be one of: 7d, 30d, 90d, all")

	// ErrInvalidExplicitPeriod is returned when an explicit period is not YYYY or YYYY-MM.
	ErrInvalidExplicitPeriod = errors.New("period must be YYYY or YYYY-MM")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRangeKey       AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidExplicitPeriod AnalyticsErrorCode = "ANL-010002"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
