package adapter

import "time"

// TokenPair is an access/refresh token pair for the UI session.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService issues and validates session tokens after a PIN login.
type TokenService interface {
	// GeneratePair issues a fresh token pair.
	GeneratePair() (*TokenPair, error)

	// ValidateAccess checks an access token. Returns ErrInvalidToken or
	// ErrTokenExpired on failure.
	ValidateAccess(token string) error

	// Refresh validates a refresh token and issues a new pair.
	Refresh(refreshToken string) (*TokenPair, error)
}
