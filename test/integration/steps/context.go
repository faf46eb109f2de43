//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizportal/backend/config"
	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/application/adapter/fake"
	"github.com/bizportal/backend/internal/domain/entity"
	"github.com/bizportal/backend/internal/infra/dependency"
	"github.com/bizportal/backend/internal/integration/adapters"
	"github.com/bizportal/backend/internal/integration/email"
	"github.com/bizportal/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response

	db       *mock.Db
	redis    *mock.Redis
	timeMock *mock.Time
	drafter  *fake.Drafter
	emails   *email.MockEmailSender
	injector *dependency.Injector
	tokens   adapter.TokenService

	accessToken   string
	currentUserID uuid.UUID
	names         map[string]uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb()
		mock.NewRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	t := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, t.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if t.server != nil {
			t.server.Close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx, t)
	registerRequestSteps(ctx, t)
	registerResponseSteps(ctx, t)
	registerStoreSteps(ctx, t)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.names = make(map[string]uuid.UUID)
	t.lastID = uuid.Nil

	t.db = mock.NewDb()
	if err := t.db.ClearDB(); err != nil {
		return err
	}
	t.redis = mock.NewRedis()
	if err := t.redis.Clear(); err != nil {
		return err
	}

	t.timeMock = mock.NewTime()
	t.drafter = &fake.Drafter{Available: true, Result: &entity.ReportDraft{Summary: "A steady month."}}
	t.emails = email.NewMockEmailSender()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Email.AppBaseURL = "http://portal.test"
	cfg.Analytics.ReportCacheTTL = time.Hour

	injector, err := dependency.NewInjector(cfg, t.db.DbConn, t.redis.Client,
		dependency.WithClock(t.timeMock),
		dependency.WithReportDrafter(t.drafter),
		dependency.WithEmailSender(t.emails),
		dependency.WithPasswordHasher(adapters.NewBcryptHasherWithCost(4)),
	)
	if err != nil {
		return fmt.Errorf("failed to wire test server: %w", err)
	}
	t.injector = injector
	t.tokens = adapters.NewTokenService(testJWTSecret, time.Hour)
	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	t.client = &http.Client{Timeout: 10 * time.Second}
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}
