// Package auth contains the PIN login, token refresh, and PIN recovery
// use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// LoginInput represents the input for a PIN login.
type LoginInput struct {
	PIN string
}

// LoginOutput represents the output of a successful login.
type LoginOutput struct {
	Tokens *adapter.TokenPair
}

// LoginUseCase verifies the shop PIN and issues a token pair. There is a
// single PIN for the whole shop; there are no per-user accounts.
type LoginUseCase struct {
	settingsRepo adapter.SettingsRepository
	pinService   adapter.PINService
	tokenService adapter.TokenService
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	settingsRepo adapter.SettingsRepository,
	pinService adapter.PINService,
	tokenService adapter.TokenService,
) *LoginUseCase {
	return &LoginUseCase{
		settingsRepo: settingsRepo,
		pinService:   pinService,
		tokenService: tokenService,
	}
}

// Execute checks the PIN and issues tokens.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidPIN,
				"invalid PIN",
				domainerror.ErrInvalidPIN,
			)
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if err := uc.pinService.VerifyPIN(settings.PINHash, input.PIN); err != nil {
		slog.Warn("PIN login rejected")
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPIN,
			"invalid PIN",
			domainerror.ErrInvalidPIN,
		)
	}

	tokens, err := uc.tokenService.GeneratePair()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginOutput{Tokens: tokens}, nil
}
