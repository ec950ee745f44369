package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/integration/adapters"
	"github.com/shop-khata/backend/internal/integration/email"
	"github.com/shop-khata/backend/internal/integration/persistence"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

func newSettingsRepo(t *testing.T) adapter.SettingsRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.SettingsModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return persistence.NewSettingsRepository(db)
}

func seedPIN(t *testing.T, repo adapter.SettingsRepository, pinService adapter.PINService, pin string) *entity.Settings {
	t.Helper()

	settings := entity.DefaultSettings()
	hash, err := pinService.HashPIN(pin)
	if err != nil {
		t.Fatalf("failed to hash PIN: %v", err)
	}
	settings.PINHash = hash
	if err := repo.Save(context.Background(), settings); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}
	return settings
}

func TestLoginUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newSettingsRepo(t)
	pinService := adapters.NewPINService()
	tokenService := adapters.NewTokenService("test-secret")
	useCase := NewLoginUseCase(repo, pinService, tokenService)

	seedPIN(t, repo, pinService, "2580")

	t.Run("correct PIN yields a token pair", func(t *testing.T) {
		output, err := useCase.Execute(ctx, LoginInput{PIN: "2580"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Tokens.AccessToken == "" || output.Tokens.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
		if err := tokenService.ValidateAccess(output.Tokens.AccessToken); err != nil {
			t.Errorf("expected the access token to validate, got %v", err)
		}
	})

	t.Run("wrong PIN is rejected", func(t *testing.T) {
		_, err := useCase.Execute(ctx, LoginInput{PIN: "0000"})
		if !errors.Is(err, domainerror.ErrInvalidPIN) {
			t.Errorf("expected ErrInvalidPIN, got %v", err)
		}
	})

	t.Run("refresh issues a fresh pair", func(t *testing.T) {
		login, err := useCase.Execute(ctx, LoginInput{PIN: "2580"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		refresh := NewRefreshUseCase(tokenService)
		output, err := refresh.Execute(ctx, RefreshInput{RefreshToken: login.Tokens.RefreshToken})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := tokenService.ValidateAccess(output.Tokens.AccessToken); err != nil {
			t.Errorf("expected the refreshed access token to validate, got %v", err)
		}
	})

	t.Run("access tokens do not work as refresh tokens", func(t *testing.T) {
		login, err := useCase.Execute(ctx, LoginInput{PIN: "2580"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		refresh := NewRefreshUseCase(tokenService)
		if _, err := refresh.Execute(ctx, RefreshInput{RefreshToken: login.Tokens.AccessToken}); err == nil {
			t.Error("expected an access token to be rejected on refresh")
		}
	})
}

func TestRecoveryFlow(t *testing.T) {
	ctx := context.Background()
	repo := newSettingsRepo(t)
	pinService := adapters.NewPINService()
	sender := email.NewMockEmailSender()
	start := NewStartRecoveryUseCase(repo, pinService, sender)
	confirm := NewConfirmRecoveryUseCase(repo, pinService)

	settings := seedPIN(t, repo, pinService, "1234")
	settings.Profile = &entity.UserProfile{Name: "Shop Owner", Email: "owner@example.com"}
	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	t.Run("sends a six digit code to the profile email", func(t *testing.T) {
		if err := start.Execute(ctx); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(sender.SentEmails) != 1 {
			t.Fatalf("expected 1 email, got %d", len(sender.SentEmails))
		}
		if sender.SentEmails[0].To != "owner@example.com" {
			t.Errorf("expected the profile address, got %s", sender.SentEmails[0].To)
		}
		code := recoveryCodeFromEmail(t, sender.SentEmails[0].Text)
		if len(code) != 6 {
			t.Errorf("expected a six digit code, got %q", code)
		}
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		err := confirm.Execute(ctx, ConfirmRecoveryInput{Code: "000000", NewPIN: "5678"})
		if !errors.Is(err, domainerror.ErrInvalidRecoveryCode) {
			t.Errorf("expected ErrInvalidRecoveryCode, got %v", err)
		}
	})

	t.Run("correct code resets the PIN once", func(t *testing.T) {
		code := recoveryCodeFromEmail(t, sender.SentEmails[0].Text)
		if err := confirm.Execute(ctx, ConfirmRecoveryInput{Code: code, NewPIN: "5678"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		stored, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := pinService.VerifyPIN(stored.PINHash, "5678"); err != nil {
			t.Errorf("expected the new PIN to verify, got %v", err)
		}

		// The code is single-use.
		err = confirm.Execute(ctx, ConfirmRecoveryInput{Code: code, NewPIN: "9999"})
		if !errors.Is(err, domainerror.ErrInvalidRecoveryCode) {
			t.Errorf("expected ErrInvalidRecoveryCode on reuse, got %v", err)
		}
	})
}

func TestStartRecoveryUseCase_Unavailable(t *testing.T) {
	ctx := context.Background()
	pinService := adapters.NewPINService()

	t.Run("requires a configured email sender", func(t *testing.T) {
		repo := newSettingsRepo(t)
		settings := seedPIN(t, repo, pinService, "1234")
		settings.Profile = &entity.UserProfile{Email: "owner@example.com"}
		if err := repo.Save(ctx, settings); err != nil {
			t.Fatalf("failed to save profile: %v", err)
		}

		sender := email.NewMockEmailSender()
		sender.Configured = false
		err := NewStartRecoveryUseCase(repo, pinService, sender).Execute(ctx)
		if !errors.Is(err, domainerror.ErrRecoveryUnavailable) {
			t.Errorf("expected ErrRecoveryUnavailable, got %v", err)
		}
	})

	t.Run("requires a profile email", func(t *testing.T) {
		repo := newSettingsRepo(t)
		seedPIN(t, repo, pinService, "1234")

		err := NewStartRecoveryUseCase(repo, pinService, email.NewMockEmailSender()).Execute(ctx)
		if !errors.Is(err, domainerror.ErrRecoveryUnavailable) {
			t.Errorf("expected ErrRecoveryUnavailable, got %v", err)
		}
	})
}

// recoveryCodeFromEmail pulls the code out of the plain-text body:
// "Your PIN recovery code is 123456. It expires in 15 minutes."
func recoveryCodeFromEmail(t *testing.T, text string) string {
	t.Helper()

	fields := strings.Fields(text)
	for i, f := range fields {
		if f == "is" && i+1 < len(fields) {
			return strings.TrimSuffix(fields[i+1], ".")
		}
	}
	t.Fatalf("no recovery code found in %q", text)
	return ""
}
