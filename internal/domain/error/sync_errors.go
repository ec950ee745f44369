package error

import "errors"

// Cloud sync domain errors.
var (
	// ErrMalformedStateDocument is returned when an imported document is not
	// a state document at all (individual malformed records are dropped, not
	// fatal).
	ErrMalformedStateDocument = errors.New("malformed state document")

	// ErrDriveUnavailable is returned when the Drive backend cannot be reached
	// or the access token is rejected.
	ErrDriveUnavailable = errors.New("drive unavailable")

	// ErrBackupNotFound is returned when no backup exists to restore from.
	ErrBackupNotFound = errors.New("no backup found")
)

// SyncErrorCode defines error codes for cloud sync errors.
type SyncErrorCode string

const (
	ErrCodeMalformedStateDocument SyncErrorCode = "SYN-010001"
	ErrCodeDriveUnavailable       SyncErrorCode = "SYN-020001"
	ErrCodeBackupNotFound         SyncErrorCode = "SYN-020002"
)

// SyncError represents a cloud sync error with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
