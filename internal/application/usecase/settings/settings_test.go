package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/integration/adapters"
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

func TestGetSettingsUseCase_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := newSettingsRepo(t)
	useCase := NewGetSettingsUseCase(repo)

	// Nothing seeded: the defaults apply.
	output, err := useCase.Execute(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !output.Settings.OpeningCash.IsZero() {
		t.Errorf("expected zero opening cash, got %s", output.Settings.OpeningCash)
	}
	if !output.Settings.AutoSync {
		t.Error("expected auto sync on by default")
	}
	if output.Settings.Language != entity.DefaultLanguage {
		t.Errorf("expected language %s, got %s", entity.DefaultLanguage, output.Settings.Language)
	}
}

func TestUpdateSettingsUseCase_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newSettingsRepo(t)
	update := NewUpdateSettingsUseCase(repo)

	openingCash := decimal.NewFromInt(1500)
	if _, err := update.Execute(ctx, UpdateSettingsInput{OpeningCash: &openingCash}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// A second update touching only the language leaves the cash alone.
	language := "en"
	output, err := update.Execute(ctx, UpdateSettingsInput{Language: &language})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !output.Settings.OpeningCash.Equal(openingCash) {
		t.Errorf("expected opening cash to survive, got %s", output.Settings.OpeningCash)
	}
	if output.Settings.Language != "en" {
		t.Errorf("expected language en, got %s", output.Settings.Language)
	}

	profile := &entity.UserProfile{Name: "Shop Owner", Email: "owner@example.com"}
	if _, err := update.Execute(ctx, UpdateSettingsInput{Profile: profile}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	stored, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored.Profile == nil || stored.Profile.Email != "owner@example.com" {
		t.Errorf("expected the profile to persist, got %+v", stored.Profile)
	}
}

func TestChangePINUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newSettingsRepo(t)
	pinService := adapters.NewPINService()
	useCase := NewChangePINUseCase(repo, pinService)

	settings := entity.DefaultSettings()
	hash, err := pinService.HashPIN("1234")
	if err != nil {
		t.Fatalf("failed to hash PIN: %v", err)
	}
	settings.PINHash = hash
	if err := repo.Save(ctx, settings); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	t.Run("wrong current PIN is rejected", func(t *testing.T) {
		err := useCase.Execute(ctx, ChangePINInput{CurrentPIN: "0000", NewPIN: "5678"})
		if !errors.Is(err, domainerror.ErrInvalidPIN) {
			t.Errorf("expected ErrInvalidPIN, got %v", err)
		}
	})

	t.Run("weak new PIN is rejected", func(t *testing.T) {
		err := useCase.Execute(ctx, ChangePINInput{CurrentPIN: "1234", NewPIN: "12"})
		if !errors.Is(err, domainerror.ErrWeakPIN) {
			t.Errorf("expected ErrWeakPIN, got %v", err)
		}
	})

	t.Run("valid change replaces the stored hash", func(t *testing.T) {
		if err := useCase.Execute(ctx, ChangePINInput{CurrentPIN: "1234", NewPIN: "5678"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		stored, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := pinService.VerifyPIN(stored.PINHash, "5678"); err != nil {
			t.Errorf("expected the new PIN to verify, got %v", err)
		}
		if err := pinService.VerifyPIN(stored.PINHash, "1234"); err == nil {
			t.Error("expected the old PIN to stop working")
		}
	})
}
