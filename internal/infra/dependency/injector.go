// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/shop-khata/backend/config"
	"github.com/shop-khata/backend/internal/application/usecase/advice"
	"github.com/shop-khata/backend/internal/application/usecase/auth"
	"github.com/shop-khata/backend/internal/application/usecase/closing"
	"github.com/shop-khata/backend/internal/application/usecase/due"
	"github.com/shop-khata/backend/internal/application/usecase/ledger"
	"github.com/shop-khata/backend/internal/application/usecase/report"
	"github.com/shop-khata/backend/internal/application/usecase/settings"
	usecasesync "github.com/shop-khata/backend/internal/application/usecase/sync"
	"github.com/shop-khata/backend/internal/infra/server/router"
	"github.com/shop-khata/backend/internal/integration/adapters"
	"github.com/shop-khata/backend/internal/integration/email"
	"github.com/shop-khata/backend/internal/integration/entrypoint/controller"
	"github.com/shop-khata/backend/internal/integration/entrypoint/middleware"
	"github.com/shop-khata/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	incomeRepo := persistence.NewIncomeRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	cashRepo := persistence.NewCashAdjustmentRepository(db)
	closingRepo := persistence.NewNightClosingRepository(db)
	dueRepo := persistence.NewDueRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	uploadedRepo := persistence.NewUploadedDayRepository(db)
	stateRepo := persistence.NewStateRepository(db)

	// Create adapters/services
	pinService := adapters.NewPINService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	driveService := adapters.NewDriveService()
	adviceService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)

	// Create ledger use cases
	addIncomeUseCase := ledger.NewAddIncomeUseCase(incomeRepo)
	addExpenseUseCase := ledger.NewAddExpenseUseCase(expenseRepo)
	addCashUseCase := ledger.NewAddCashAdjustmentUseCase(cashRepo)
	deleteLedgerEntryUseCase := ledger.NewDeleteEntryUseCase(incomeRepo, expenseRepo, cashRepo)
	overviewUseCase := ledger.NewGetOverviewUseCase(
		incomeRepo, expenseRepo, cashRepo, dueRepo, closingRepo, settingsRepo, uploadedRepo)
	monthlySeriesUseCase := ledger.NewGetMonthlySeriesUseCase(incomeRepo, expenseRepo)

	// Create night closing use cases
	recordClosingUseCase := closing.NewRecordEntryUseCase(closingRepo)
	closingStatusUseCase := closing.NewGetDayStatusUseCase(closingRepo)
	deleteClosingUseCase := closing.NewDeleteEntryUseCase(closingRepo)
	resetClosingUseCase := closing.NewResetDayUseCase(closingRepo)

	// Create due use cases
	createDueUseCase := due.NewCreateDueUseCase(dueRepo)
	collectDueUseCase := due.NewCollectDueUseCase(dueRepo)
	deleteDueUseCase := due.NewDeleteDueUseCase(dueRepo)
	updateDueUseCase := due.NewUpdateDueUseCase(dueRepo)
	listDuesUseCase := due.NewListDuesUseCase(dueRepo)

	// Create report use cases
	dailyReportUseCase := report.NewGetDailyReportUseCase(
		incomeRepo, expenseRepo, closingRepo, dueRepo, uploadedRepo)
	markUploadedUseCase := report.NewMarkUploadedUseCase(uploadedRepo)
	listUploadedUseCase := report.NewListUploadedDaysUseCase(uploadedRepo)

	// Create sync use cases
	exportUseCase := usecasesync.NewExportStateUseCase(stateRepo)
	importUseCase := usecasesync.NewImportStateUseCase(stateRepo)
	backupUseCase := usecasesync.NewBackupUseCase(stateRepo, driveService)
	restoreUseCase := usecasesync.NewRestoreUseCase(driveService, importUseCase)

	// Create auth use cases
	loginUseCase := auth.NewLoginUseCase(settingsRepo, pinService, tokenService)
	refreshUseCase := auth.NewRefreshUseCase(tokenService)
	startRecoveryUseCase := auth.NewStartRecoveryUseCase(settingsRepo, pinService, emailSender)
	confirmRecoveryUseCase := auth.NewConfirmRecoveryUseCase(settingsRepo, pinService)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)
	changePINUseCase := settings.NewChangePINUseCase(settingsRepo, pinService)

	// Create advice use case
	adviceUseCase := advice.NewGetAdviceUseCase(incomeRepo, expenseRepo, settingsRepo, adviceService)

	// Create controllers
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(
		loginUseCase,
		refreshUseCase,
		startRecoveryUseCase,
		confirmRecoveryUseCase,
	)
	ledgerController := controller.NewLedgerController(
		addIncomeUseCase,
		addExpenseUseCase,
		addCashUseCase,
		deleteLedgerEntryUseCase,
		incomeRepo,
		expenseRepo,
		cashRepo,
	)
	dashboardController := controller.NewDashboardController(overviewUseCase, monthlySeriesUseCase)
	closingController := controller.NewClosingController(
		recordClosingUseCase,
		closingStatusUseCase,
		deleteClosingUseCase,
		resetClosingUseCase,
	)
	dueController := controller.NewDueController(
		createDueUseCase,
		collectDueUseCase,
		deleteDueUseCase,
		updateDueUseCase,
		listDuesUseCase,
	)
	reportController := controller.NewReportController(
		dailyReportUseCase,
		markUploadedUseCase,
		listUploadedUseCase,
	)
	syncController := controller.NewSyncController(
		exportUseCase,
		importUseCase,
		backupUseCase,
		restoreUseCase,
	)
	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		changePINUseCase,
	)
	adviceController := controller.NewAdviceController(adviceUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		ledgerController,
		dashboardController,
		closingController,
		dueController,
		reportController,
		syncController,
		settingsController,
		adviceController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
