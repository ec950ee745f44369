package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// ChangePINInput represents the input for changing the shop PIN.
type ChangePINInput struct {
	CurrentPIN string
	NewPIN     string
}

// ChangePINUseCase changes the shop PIN after verifying the current one.
type ChangePINUseCase struct {
	settingsRepo adapter.SettingsRepository
	pinService   adapter.PINService
}

// NewChangePINUseCase creates a new ChangePINUseCase instance.
func NewChangePINUseCase(settingsRepo adapter.SettingsRepository, pinService adapter.PINService) *ChangePINUseCase {
	return &ChangePINUseCase{settingsRepo: settingsRepo, pinService: pinService}
}

// Execute changes the PIN.
func (uc *ChangePINUseCase) Execute(ctx context.Context, input ChangePINInput) error {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := uc.pinService.VerifyPIN(settings.PINHash, input.CurrentPIN); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPIN,
			"current PIN is incorrect",
			domainerror.ErrInvalidPIN,
		)
	}

	if err := uc.pinService.ValidatePINStrength(input.NewPIN); err != nil {
		return err
	}

	newHash, err := uc.pinService.HashPIN(input.NewPIN)
	if err != nil {
		return fmt.Errorf("failed to hash new PIN: %w", err)
	}

	settings.PINHash = newHash
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save new PIN: %w", err)
	}

	slog.Info("Shop PIN changed")
	return nil
}
