// Package error defines domain-specific errors for the business admin portal.
package error

import "errors"

// Report drafting errors.
var (
	// ErrReportServiceNotConfigured is returned when no AI credential is configured.
	ErrReportServiceNotConfigured = errors.New("report drafting service is not configured")

	// ErrReportMalformedResponse is returned when the drafting service answers with unparseable content.
	ErrReportMalformedResponse = errors.New("report drafting service returned a malformed response")

	// ErrReportNotFound is returned when an archived report does not exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrNoTransactionsForPeriod is returned when the requested period has no ledger entries.
	ErrNoTransactionsForPeriod = errors.New("no transactions recorded for this period")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeReportNotFound      ReportErrorCode = "RPT-010001"
	ErrCodeNoTransactions      ReportErrorCode = "RPT-010002"
	ErrCodeMissingReportFields ReportErrorCode = "RPT-010003"

	// Drafting service errors (02XXXX)
	ErrCodeReportNotConfigured ReportErrorCode = "RPT-020001"
	ErrCodeReportRateLimited   ReportErrorCode = "RPT-020002"
	ErrCodeReportAuthError     ReportErrorCode = "RPT-020003"
	ErrCodeReportTimeout       ReportErrorCode = "RPT-020004"
	ErrCodeReportMalformed     ReportErrorCode = "RPT-020005"
	ErrCodeReportUnavailable   ReportErrorCode = "RPT-020006"
	ErrCodeReportUnknown       ReportErrorCode = "RPT-020007"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
