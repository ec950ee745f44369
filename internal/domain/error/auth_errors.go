package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidPIN is returned when the supplied PIN does not match.
	ErrInvalidPIN = errors.New("invalid PIN")

	// ErrWeakPIN is returned when a new PIN does not meet the minimum length.
	ErrWeakPIN = errors.New("PIN must be at least 4 digits")

	// ErrInvalidToken is returned when a token is malformed or has a bad signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a token has expired.
	ErrTokenExpired = errors.New("token expired")

	// ErrMissingToken is returned when no token is supplied on a guarded route.
	ErrMissingToken = errors.New("missing token")

	// ErrRecoveryUnavailable is returned when PIN recovery cannot run because
	// no profile email or email service is configured.
	ErrRecoveryUnavailable = errors.New("PIN recovery unavailable")

	// ErrInvalidRecoveryCode is returned when a recovery code is wrong or expired.
	ErrInvalidRecoveryCode = errors.New("invalid or expired recovery code")

	// ErrRateLimited is returned when too many attempts arrive in a window.
	ErrRateLimited = errors.New("too many attempts")
)

// AuthErrorCode defines error codes for auth errors.
type AuthErrorCode string

const (
	ErrCodeInvalidPIN          AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPIN             AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidToken        AuthErrorCode = "AUTH-010003"
	ErrCodeTokenExpired        AuthErrorCode = "AUTH-010004"
	ErrCodeMissingToken        AuthErrorCode = "AUTH-010005"
	ErrCodeRecoveryUnavailable AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidRecoveryCode AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited         AuthErrorCode = "AUTH-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
