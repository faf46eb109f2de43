// Package error defines domain-specific errors for the business admin portal.
package error

import "errors"

// Report delivery (e-mail) errors.
var (
	// ErrEmailQueueFailed is returned when a delivery job fails to be queued.
	ErrEmailQueueFailed = errors.New("failed to queue email")

	// ErrMissingRecipient is returned when a report is e-mailed to an entrepreneur without an address.
	ErrMissingRecipient = errors.New("entrepreneur has no e-mail address")

	// ErrInvalidTemplate is returned when an unknown email template is requested.
	ErrInvalidTemplate = errors.New("invalid email template")

	// ErrEmailJobNotFound is returned when an email job is not found.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeEmailQueueFailed EmailErrorCode = "EML-010001"
	ErrCodeEmailJobNotFound EmailErrorCode = "EML-010002"
	ErrCodeMissingRecipient EmailErrorCode = "EML-010003"

	// Provider errors (02XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-020001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-020002"

	// Template errors (03XXXX)
	ErrCodeInvalidTemplate EmailErrorCode = "EML-030001"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
