package dto

import (
	"github.com/shop-khata/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for updating settings.
type UpdateSettingsRequest struct {
	OpeningCash   *float64            `json:"opening_cash,omitempty"`
	DriveClientID *string             `json:"drive_client_id,omitempty"`
	AutoSync      *bool               `json:"auto_sync,omitempty"`
	Language      *string             `json:"language,omitempty" binding:"omitempty,oneof=bn en"`
	Profile       *UserProfileRequest `json:"profile,omitempty"`
}

// UserProfileRequest represents the profile fields in settings updates.
type UserProfileRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email" binding:"omitempty,email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ChangePINRequest represents the request body for changing the shop PIN.
type ChangePINRequest struct {
	CurrentPIN string `json:"current_pin" binding:"required"`
	NewPIN     string `json:"new_pin" binding:"required"`
}

// UserProfileResponse represents the profile in API responses.
type UserProfileResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// SettingsResponse represents the shop settings in API responses. The PIN
// hash never appears here.
type SettingsResponse struct {
	OpeningCash   string               `json:"opening_cash"`
	DriveClientID string               `json:"drive_client_id,omitempty"`
	AutoSync      bool                 `json:"auto_sync"`
	Language      string               `json:"language"`
	Profile       *UserProfileResponse `json:"profile,omitempty"`
}

// ToSettingsResponse converts settings to their response form.
func ToSettingsResponse(settings *entity.Settings) SettingsResponse {
	resp := SettingsResponse{
		OpeningCash:   settings.OpeningCash.String(),
		DriveClientID: settings.DriveClientID,
		AutoSync:      settings.AutoSync,
		Language:      settings.Language,
	}
	if settings.Profile != nil {
		resp.Profile = &UserProfileResponse{
			Name:      settings.Profile.Name,
			Email:     settings.Profile.Email,
			AvatarURL: settings.Profile.AvatarURL,
		}
	}
	return resp
}
