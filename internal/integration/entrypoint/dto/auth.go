package dto

import (
	"time"

	"github.com/shop-khata/backend/internal/application/adapter"
)

// LoginRequest represents the request body for a PIN login.
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// RefreshRequest represents the request body for a token refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ConfirmRecoveryRequest represents the request body for finishing a PIN
// recovery.
type ConfirmRecoveryRequest struct {
	Code   string `json:"code" binding:"required"`
	NewPIN string `json:"new_pin" binding:"required"`
}

// TokenResponse represents an issued token pair.
type TokenResponse struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// ToTokenResponse converts a token pair to its response form.
func ToTokenResponse(pair *adapter.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
	}
}

// AdviceResponse represents generated business advice.
type AdviceResponse struct {
	Advice string `json:"advice"`
}
