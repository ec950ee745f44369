package error

import "errors"

// Customer due domain errors.
var (
	// ErrDueNotFound is returned when a due id does not exist.
	ErrDueNotFound = errors.New("customer due not found")

	// ErrEmptyCustomerName is returned when a due has no customer name.
	ErrEmptyCustomerName = errors.New("customer name is required")

	// ErrDueAlreadyCollected is returned when collect is called on a due that
	// has already been marked paid.
	ErrDueAlreadyCollected = errors.New("due already collected")

	// ErrDueNotCollected is returned when an unpaid due is permanently
	// deleted. Unresolved receivables cannot be silently discarded.
	ErrDueNotCollected = errors.New("due has not been collected")
)

// DueErrorCode defines error codes for customer due errors.
type DueErrorCode string

const (
	ErrCodeDueNotFound         DueErrorCode = "DUE-010001"
	ErrCodeEmptyCustomerName   DueErrorCode = "DUE-010002"
	ErrCodeInvalidDueAmount    DueErrorCode = "DUE-010003"
	ErrCodeDueAlreadyCollected DueErrorCode = "DUE-010004"
	ErrCodeDueNotCollected     DueErrorCode = "DUE-010005"
)

// DueError represents a customer due error with code and message.
type DueError struct {
	Code    DueErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DueError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DueError) Unwrap() error {
	return e.Err
}

// NewDueError creates a new DueError with the given code and message.
func NewDueError(code DueErrorCode, message string, err error) *DueError {
	return &DueError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
