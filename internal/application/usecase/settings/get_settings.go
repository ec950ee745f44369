// Package settings contains the shop settings use cases.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// GetSettingsOutput represents the output of reading the shop settings.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase reads the settings, falling back to defaults when no
// row exists yet.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute reads the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if errors.Is(err, domainerror.ErrSettingsNotFound) {
		settings = entity.DefaultSettings()
	} else if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &GetSettingsOutput{Settings: settings}, nil
}
