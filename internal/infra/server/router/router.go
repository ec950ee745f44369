// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shop-khata/backend/internal/integration/entrypoint/controller"
	"github.com/shop-khata/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	ledgerController    *controller.LedgerController
	dashboardController *controller.DashboardController
	closingController   *controller.ClosingController
	dueController       *controller.DueController
	reportController    *controller.ReportController
	syncController      *controller.SyncController
	settingsController  *controller.SettingsController
	adviceController    *controller.AdviceController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	ledgerController *controller.LedgerController,
	dashboardController *controller.DashboardController,
	closingController *controller.ClosingController,
	dueController *controller.DueController,
	reportController *controller.ReportController,
	syncController *controller.SyncController,
	settingsController *controller.SettingsController,
	adviceController *controller.AdviceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		ledgerController:    ledgerController,
		dashboardController: dashboardController,
		closingController:   closingController,
		dueController:       dueController,
		reportController:    reportController,
		syncController:      syncController,
		settingsController:  settingsController,
		adviceController:    adviceController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes. Login and recovery are rate limited since the PIN
		// space is small.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/recover", r.loginRateLimiter.Middleware(), r.authController.StartRecovery)
			auth.POST("/recover/confirm", r.loginRateLimiter.Middleware(), r.authController.ConfirmRecovery)
		}

		// Ledger routes (require authentication)
		income := v1.Group("/income")
		income.Use(r.authMiddleware.Authenticate())
		{
			income.GET("", r.ledgerController.ListIncome)
			income.POST("", r.ledgerController.CreateIncome)
			income.DELETE("/:id", r.ledgerController.DeleteIncome)
		}

		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.ledgerController.ListExpenses)
			expenses.POST("", r.ledgerController.CreateExpense)
			expenses.DELETE("/:id", r.ledgerController.DeleteExpense)
		}

		cash := v1.Group("/cash-adjustments")
		cash.Use(r.authMiddleware.Authenticate())
		{
			cash.GET("", r.ledgerController.ListCashAdjustments)
			cash.POST("", r.ledgerController.CreateCashAdjustment)
			cash.DELETE("/:id", r.ledgerController.DeleteCashAdjustment)
		}

		// Dashboard routes (require authentication)
		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/overview", r.dashboardController.Overview)
			dashboard.GET("/monthly", r.dashboardController.MonthlySeries)
		}

		// Night closing routes (require authentication)
		closing := v1.Group("/closing")
		closing.Use(r.authMiddleware.Authenticate())
		{
			closing.GET("/:date", r.closingController.Status)
			closing.PUT("/:date/:category", r.closingController.Record)
			closing.POST("/:date/reset", r.closingController.Reset)
			closing.DELETE("/entries/:id", r.closingController.Delete)
		}

		// Customer due routes (require authentication)
		dues := v1.Group("/dues")
		dues.Use(r.authMiddleware.Authenticate())
		{
			dues.GET("", r.dueController.List)
			dues.POST("", r.dueController.Create)
			dues.PATCH("/:id", r.dueController.Update)
			dues.POST("/:id/collect", r.dueController.Collect)
			dues.DELETE("/:id", r.dueController.Delete)
		}

		// Report routes (require authentication). Gin matches the static
		// "uploaded" segment before the ":date" parameter.
		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/uploaded", r.reportController.ListUploaded)
			reports.GET("/:date", r.reportController.Daily)
			reports.POST("/:date/uploaded", r.reportController.MarkUploaded)
		}

		// Sync routes (require authentication)
		sync := v1.Group("/sync")
		sync.Use(r.authMiddleware.Authenticate())
		{
			sync.GET("/export", r.syncController.Export)
			sync.POST("/import", r.syncController.Import)
			sync.POST("/backup", r.syncController.Backup)
			sync.POST("/restore", r.syncController.Restore)
		}

		// Settings routes (require authentication)
		settings := v1.Group("/settings")
		settings.Use(r.authMiddleware.Authenticate())
		{
			settings.GET("", r.settingsController.Get)
			settings.PATCH("", r.settingsController.Update)
			settings.POST("/pin", r.settingsController.ChangePIN)
		}

		// Advice route (require authentication)
		advice := v1.Group("/advice")
		advice.Use(r.authMiddleware.Authenticate())
		{
			advice.GET("", r.adviceController.Get)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
