// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bizportal/backend/config"
	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/application/usecase/auth"
	"github.com/bizportal/backend/internal/application/usecase/dashboard"
	"github.com/bizportal/backend/internal/application/usecase/entrepreneur"
	"github.com/bizportal/backend/internal/application/usecase/ledger"
	"github.com/bizportal/backend/internal/application/usecase/report"
	"github.com/bizportal/backend/internal/application/usecase/transaction"
	"github.com/bizportal/backend/internal/infra/server/router"
	"github.com/bizportal/backend/internal/integration/adapters"
	"github.com/bizportal/backend/internal/integration/cache"
	"github.com/bizportal/backend/internal/integration/email"
	"github.com/bizportal/backend/internal/integration/email/templates"
	"github.com/bizportal/backend/internal/integration/entrypoint/controller"
	"github.com/bizportal/backend/internal/integration/entrypoint/middleware"
	"github.com/bizportal/backend/internal/integration/persistence"
	"github.com/bizportal/backend/internal/integration/realtime"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
	RateLimiter *middleware.RateLimiter
}

type options struct {
	clock       adapter.Clock
	drafter     adapter.ReportDrafter
	emailSender adapter.EmailSender
	passwords   adapter.PasswordHasher
}

// Option overrides one external collaborator. Tests use it to pin the
// clock and replace the drafting and e-mail providers.
type Option func(*options)

// WithClock sets the clock used by the analytics use cases.
func WithClock(clock adapter.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithReportDrafter replaces the Gemini report drafter.
func WithReportDrafter(drafter adapter.ReportDrafter) Option {
	return func(o *options) { o.drafter = drafter }
}

// WithEmailSender replaces the Resend client.
func WithEmailSender(sender adapter.EmailSender) Option {
	return func(o *options) { o.emailSender = sender }
}

// WithPasswordHasher replaces the bcrypt hasher.
func WithPasswordHasher(passwords adapter.PasswordHasher) Option {
	return func(o *options) { o.passwords = passwords }
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, opts ...Option) (*Injector, error) {
	o := options{
		clock:     adapter.SystemClock{Location: cfg.Analytics.Location()},
		drafter:   adapters.NewGeminiReportDrafter(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout),
		passwords: adapters.NewBcryptHasher(),
	}
	if cfg.Email.ResendAPIKey != "" {
		o.emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		o.emailSender = email.NewMockEmailSender()
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	entrepreneurRepo := persistence.NewEntrepreneurRepository(db)
	ledgerUpdater := persistence.NewLedgerUpdater(db)
	reportRepo := persistence.NewReportRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db, o.clock)

	// Adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	notifier := realtime.NewRedisNotifier(redisClient)
	reportCache := cache.NewRedisReportCache(redisClient)
	emailService := email.NewService(emailQueueRepo, o.clock, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	worker := email.NewWorker(emailQueueRepo, o.emailSender, renderer, o.clock, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, o.passwords, emailService, notifier, "")
	loginUseCase := auth.NewLoginUserUseCase(userRepo, o.passwords, tokenService)

	// Dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(transactionRepo, entrepreneurRepo, o.clock,
		cfg.Analytics.TopN, cfg.Analytics.RecentActivity)
	getChartSeriesUseCase := dashboard.NewGetChartSeriesUseCase(transactionRepo, o.clock)

	// Entrepreneur use cases
	listEntrepreneursUseCase := entrepreneur.NewListEntrepreneursUseCase(entrepreneurRepo)
	getEntrepreneurUseCase := entrepreneur.NewGetEntrepreneurUseCase(entrepreneurRepo)
	createEntrepreneurUseCase := entrepreneur.NewCreateEntrepreneurUseCase(entrepreneurRepo, notifier)
	updateEntrepreneurUseCase := entrepreneur.NewUpdateEntrepreneurUseCase(entrepreneurRepo, notifier)
	deleteEntrepreneurUseCase := entrepreneur.NewDeleteEntrepreneurUseCase(entrepreneurRepo, transactionRepo, ledgerUpdater, notifier)
	summaryUseCase := entrepreneur.NewGetEntrepreneurSummaryUseCase(entrepreneurRepo, transactionRepo, o.clock,
		cfg.Analytics.TopN, cfg.Analytics.RecentActivity)
	addGoalUseCase := entrepreneur.NewAddGoalUseCase(entrepreneurRepo, transactionRepo, notifier, o.clock)
	deleteGoalUseCase := entrepreneur.NewDeleteGoalUseCase(entrepreneurRepo, notifier)
	goalProgressUseCase := entrepreneur.NewGetGoalProgressUseCase(entrepreneurRepo, transactionRepo, o.clock)

	// Transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, entrepreneurRepo, notifier)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, notifier)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, notifier)
	importTransactionsUseCase := transaction.NewImportTransactionsUseCase(transactionRepo, notifier)

	// Report use cases
	generateReportUseCase := report.NewGenerateReportUseCase(entrepreneurRepo, transactionRepo, reportRepo,
		o.drafter, reportCache, cfg.Analytics.ReportCacheTTL, cfg.Analytics.TopN)
	listReportsUseCase := report.NewListReportsUseCase(reportRepo)
	getReportUseCase := report.NewGetReportUseCase(reportRepo)
	emailReportUseCase := report.NewEmailReportUseCase(reportRepo, entrepreneurRepo, emailService)

	feed := ledger.NewFeed(transactionRepo, entrepreneurRepo, userRepo, notifier)

	// Controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(
			func() bool {
				sqlDB, err := db.DB()
				if err != nil {
					return false
				}
				return sqlDB.Ping() == nil
			},
			func() bool {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return redisClient.Ping(ctx).Err() == nil
			},
		),
		Auth:      controller.NewAuthController(registerUseCase, loginUseCase),
		Dashboard: controller.NewDashboardController(getDashboardUseCase, getChartSeriesUseCase),
		Entrepreneur: controller.NewEntrepreneurController(
			listEntrepreneursUseCase,
			getEntrepreneurUseCase,
			createEntrepreneurUseCase,
			updateEntrepreneurUseCase,
			deleteEntrepreneurUseCase,
			summaryUseCase,
			addGoalUseCase,
			deleteGoalUseCase,
			goalProgressUseCase,
		),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			updateTransactionUseCase,
			deleteTransactionUseCase,
			importTransactionsUseCase,
		),
		Report: controller.NewReportController(
			generateReportUseCase,
			listReportsUseCase,
			getReportUseCase,
			emailReportUseCase,
		),
		Ledger: controller.NewLedgerController(feed),
	}

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      router.NewRouter(controllers, loginRateLimiter, authMiddleware),
		EmailWorker: worker,
		RateLimiter: loginRateLimiter,
	}, nil
}
