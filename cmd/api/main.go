// Package main is the entry point for the Shop Khata API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shop-khata/backend/config"
	"github.com/shop-khata/backend/internal/application/adapter"
	"github.com/shop-khata/backend/internal/domain/entity"
	domainerror "github.com/shop-khata/backend/internal/domain/error"
	"github.com/shop-khata/backend/internal/infra/db"
	"github.com/shop-khata/backend/internal/infra/dependency"
	"github.com/shop-khata/backend/internal/integration/adapters"
	"github.com/shop-khata/backend/internal/integration/persistence"
	"github.com/shop-khata/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Shop Khata API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewSQLiteConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.IncomeModel{},
		&model.ExpenseModel{},
		&model.NightClosingModel{},
		&model.CashAdjustmentModel{},
		&model.DueModel{},
		&model.SettingsModel{},
		&model.UploadedDayModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Seed the settings row so a fresh store can log in with the default PIN
	if err := seedSettings(context.Background(), persistence.NewSettingsRepository(database.DB()), adapters.NewPINService()); err != nil {
		slog.Error("Failed to seed settings", "error", err)
		os.Exit(1)
	}

	// Wire dependencies and routes
	injector := dependency.NewInjector(cfg, database.DB())
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// seedSettings creates the singleton settings row with defaults when the
// store is empty. An existing row is never touched.
func seedSettings(ctx context.Context, settingsRepo adapter.SettingsRepository, pinService adapter.PINService) error {
	_, err := settingsRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerror.ErrSettingsNotFound) {
		return err
	}

	seeded := entity.DefaultSettings()
	hash, err := pinService.HashPIN(entity.DefaultPIN)
	if err != nil {
		return err
	}
	seeded.PINHash = hash

	if err := settingsRepo.Save(ctx, seeded); err != nil {
		return err
	}

	slog.Info("Seeded default settings", "language", seeded.Language)
	return nil
}
