package error

import "errors"

// Night-closing domain errors.
var (
	// ErrInvalidClosingCategory is returned when the slot name is not one of
	// the fixed closing categories.
	ErrInvalidClosingCategory = errors.New("invalid closing category")

	// ErrClosingEntryNotFound is returned when a closing entry id does not exist.
	ErrClosingEntryNotFound = errors.New("closing entry not found")
)

// ClosingErrorCode defines error codes for night-closing errors.
type ClosingErrorCode string

const (
	ErrCodeInvalidClosingCategory ClosingErrorCode = "CLS-010001"
	ErrCodeInvalidClosingAmount   ClosingErrorCode = "CLS-010002"
	ErrCodeClosingEntryNotFound   ClosingErrorCode = "CLS-010003"
)

// ClosingError represents a night-closing error with code and message.
type ClosingError struct {
	Code    ClosingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClosingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClosingError) Unwrap() error {
	return e.Err
}

// NewClosingError creates a new ClosingError with the given code and message.
func NewClosingError(code ClosingErrorCode, message string, err error) *ClosingError {
	return &ClosingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
