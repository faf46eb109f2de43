// Package error defines domain-specific errors for the business admin portal.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found on the entrepreneur.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetValue is returned when a numeric goal has a zero or negative target.
	ErrInvalidTargetValue = errors.New("invalid target value")

	// ErrInvalidGoalType is returned when the goal type is not recognised.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrMissingGoalTitle is returned when a goal has no title.
	ErrMissingGoalTitle = errors.New("goal title is required")

	// ErrInvalidGoalDate is returned when the target date is missing or malformed.
	ErrInvalidGoalDate = errors.New("invalid goal target date")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound       GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetValue GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalType    GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalTitle   GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalDate    GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields  GoalErrorCode = "GOL-010006"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
