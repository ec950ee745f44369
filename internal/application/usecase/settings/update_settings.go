package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for updating settings. Nil
// fields are left unchanged. The PIN is not updatable here; it has its own
// use case.
type UpdateSettingsInput struct {
	OpeningCash   *decimal.Decimal
	DriveClientID *string
	AutoSync      *bool
	Language      *string
	Profile       *entity.UserProfile
}

// UpdateSettingsOutput represents the output of updating settings.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase applies partial settings updates.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute applies the update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if errors.Is(err, domainerror.ErrSettingsNotFound) {
		settings = entity.DefaultSettings()
	} else if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if input.OpeningCash != nil {
		settings.OpeningCash = *input.OpeningCash
	}
	if input.DriveClientID != nil {
		settings.DriveClientID = *input.DriveClientID
	}
	if input.AutoSync != nil {
		settings.AutoSync = *input.AutoSync
	}
	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.Profile != nil {
		settings.Profile = input.Profile
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}
