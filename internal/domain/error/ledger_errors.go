// Package error defines domain-specific errors for the Shop Khata backend.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidAmount is returned when an amount is missing, zero, or negative.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrInvalidIncomeCategory is returned when the income category is unknown.
	ErrInvalidIncomeCategory = errors.New("invalid income category")

	// ErrEmptyExpenseName is returned when an expense has no name.
	ErrEmptyExpenseName = errors.New("expense name is required")

	// ErrInvalidCashDirection is returned when a cash adjustment direction is unknown.
	ErrInvalidCashDirection = errors.New("cash direction must be 'in' or 'out'")

	// ErrInvalidDay is returned when a date is not a valid YYYY-MM-DD key.
	ErrInvalidDay = errors.New("invalid date")

	// ErrUnknownEntryKind is returned when a delete names no known collection.
	ErrUnknownEntryKind = errors.New("unknown entry kind")

	// ErrPersistence is returned when a durable-storage write or read fails
	// after validation has already passed.
	ErrPersistence = errors.New("persistence failure")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount         LedgerErrorCode = "LGR-010001"
	ErrCodeInvalidIncomeCategory LedgerErrorCode = "LGR-010002"
	ErrCodeEmptyExpenseName      LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidCashDirection  LedgerErrorCode = "LGR-010004"
	ErrCodeInvalidDay            LedgerErrorCode = "LGR-010005"
	ErrCodeUnknownEntryKind      LedgerErrorCode = "LGR-010006"

	// Persistence errors (02XXXX)
	ErrCodePersistence LedgerErrorCode = "LGR-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
