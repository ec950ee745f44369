package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/shop-khata/backend/internal/application/adapter"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
)

// recoveryCodeTTL is how long an emailed recovery code stays valid.
const recoveryCodeTTL = 15 * time.Minute

// StartRecoveryUseCase emails a one-time code to the profile email so a
// forgotten PIN can be reset. Requires a configured email sender and a
// profile with an email address.
type StartRecoveryUseCase struct {
	settingsRepo adapter.SettingsRepository
	pinService   adapter.PINService
	emailSender  adapter.EmailSender
}

// NewStartRecoveryUseCase creates a new StartRecoveryUseCase instance.
func NewStartRecoveryUseCase(
	settingsRepo adapter.SettingsRepository,
	pinService adapter.PINService,
	emailSender adapter.EmailSender,
) *StartRecoveryUseCase {
	return &StartRecoveryUseCase{
		settingsRepo: settingsRepo,
		pinService:   pinService,
		emailSender:  emailSender,
	}
}

// Execute generates, stores, and emails the recovery code. Only a hash of
// the code is persisted.
func (uc *StartRecoveryUseCase) Execute(ctx context.Context) error {
	if !uc.emailSender.IsConfigured() {
		return domainerror.NewAuthError(
			domainerror.ErrCodeRecoveryUnavailable,
			"email service is not configured",
			domainerror.ErrRecoveryUnavailable,
		)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Profile == nil || settings.Profile.Email == "" {
		return domainerror.NewAuthError(
			domainerror.ErrCodeRecoveryUnavailable,
			"no profile email on record",
			domainerror.ErrRecoveryUnavailable,
		)
	}

	code, err := generateRecoveryCode()
	if err != nil {
		return fmt.Errorf("failed to generate recovery code: %w", err)
	}

	codeHash, err := uc.pinService.HashPIN(code)
	if err != nil {
		return fmt.Errorf("failed to hash recovery code: %w", err)
	}

	settings.RecoveryCodeHash = codeHash
	settings.RecoveryCodeExpires = time.Now().Add(recoveryCodeTTL)
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to store recovery code: %w", err)
	}

	err = uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      settings.Profile.Email,
		Subject: "Your PIN recovery code",
		HTML:    fmt.Sprintf("<p>Your PIN recovery code is <strong>%s</strong>. It expires in 15 minutes.</p>", code),
		Text:    fmt.Sprintf("Your PIN recovery code is %s. It expires in 15 minutes.", code),
	})
	if err != nil {
		return fmt.Errorf("failed to send recovery email: %w", err)
	}

	slog.Info("PIN recovery code sent")
	return nil
}

// ConfirmRecoveryInput represents the input for finishing a PIN recovery.
type ConfirmRecoveryInput struct {
	Code   string
	NewPIN string
}

// ConfirmRecoveryUseCase verifies the emailed code and sets the new PIN.
type ConfirmRecoveryUseCase struct {
	settingsRepo adapter.SettingsRepository
	pinService   adapter.PINService
}

// NewConfirmRecoveryUseCase creates a new ConfirmRecoveryUseCase instance.
func NewConfirmRecoveryUseCase(
	settingsRepo adapter.SettingsRepository,
	pinService adapter.PINService,
) *ConfirmRecoveryUseCase {
	return &ConfirmRecoveryUseCase{settingsRepo: settingsRepo, pinService: pinService}
}

// Execute resets the PIN if the code checks out. The stored code is cleared
// whether or not it had expired, so codes are single-use.
func (uc *ConfirmRecoveryUseCase) Execute(ctx context.Context, input ConfirmRecoveryInput) error {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.RecoveryCodeHash == "" || time.Now().After(settings.RecoveryCodeExpires) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRecoveryCode,
			"recovery code is invalid or expired",
			domainerror.ErrInvalidRecoveryCode,
		)
	}

	if err := uc.pinService.VerifyPIN(settings.RecoveryCodeHash, input.Code); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRecoveryCode,
			"recovery code is invalid or expired",
			domainerror.ErrInvalidRecoveryCode,
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
	settings.RecoveryCodeHash = ""
	settings.RecoveryCodeExpires = time.Time{}
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save new PIN: %w", err)
	}

	slog.Info("PIN reset via recovery code")
	return nil
}

// generateRecoveryCode returns a random six digit code.
func generateRecoveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
