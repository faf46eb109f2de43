// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bizportal/backend/internal/integration/entrypoint/controller"
	"github.com/bizportal/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	dashboardController    *controller.DashboardController
	entrepreneurController *controller.EntrepreneurController
	transactionController  *controller.TransactionController
	reportController       *controller.ReportController
	ledgerController       *controller.LedgerController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// Controllers groups the handlers mounted by the router.
type Controllers struct {
	Health       *controller.HealthController
	Auth         *controller.AuthController
	Dashboard    *controller.DashboardController
	Entrepreneur *controller.EntrepreneurController
	Transaction  *controller.TransactionController
	Report       *controller.ReportController
	Ledger       *controller.LedgerController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       controllers.Health,
		authController:         controllers.Auth,
		dashboardController:    controllers.Dashboard,
		entrepreneurController: controllers.Entrepreneur,
		transactionController:  controllers.Transaction,
		reportController:       controllers.Report,
		ledgerController:       controllers.Ledger,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Everything except auth
// requires a valid access token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authMiddleware.OptionalAuthenticate(), r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("", r.dashboardController.Get)
		dashboard.GET("/chart", r.dashboardController.GetChart)
	}

	entrepreneurs := protected.Group("/entrepreneurs")
	{
		entrepreneurs.GET("", r.entrepreneurController.List)
		entrepreneurs.POST("", r.entrepreneurController.Create)
		entrepreneurs.GET("/:id", r.entrepreneurController.Get)
		entrepreneurs.PUT("/:id", r.entrepreneurController.Update)
		entrepreneurs.DELETE("/:id", r.entrepreneurController.Delete)
		entrepreneurs.GET("/:id/summary", r.entrepreneurController.Summary)
		entrepreneurs.POST("/:id/goals", r.entrepreneurController.AddGoal)
		entrepreneurs.GET("/:id/goals/progress", r.entrepreneurController.GoalProgress)
		entrepreneurs.DELETE("/:id/goals/:goalId", r.entrepreneurController.DeleteGoal)
	}

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("", middleware.RequireAdmin(), r.transactionController.Import)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	reports := protected.Group("/reports")
	{
		reports.POST("", r.reportController.Generate)
		reports.GET("", r.reportController.List)
		reports.GET("/:id", r.reportController.Get)
		reports.POST("/:id/email", r.reportController.Email)
	}

	protected.GET("/ledger/:collection/stream", r.ledgerController.Stream)
}
