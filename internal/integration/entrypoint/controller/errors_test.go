package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid amount",
			err:        domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionAmount, "bad amount", domainerror.ErrInvalidTransactionAmount),
			wantStatus: http.StatusBadRequest,
			wantCode:   "LDG-010003",
		},
		{
			name:       "transaction not found",
			err:        domainerror.NewTransactionError(domainerror.ErrCodeTransactionNotFound, "missing", domainerror.ErrTransactionNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "LDG-020001",
		},
		{
			name:       "wrapped entrepreneur not found",
			err:        fmt.Errorf("summary: %w", domainerror.NewEntrepreneurError(domainerror.ErrCodeEntrepreneurNotFound, "missing", domainerror.ErrEntrepreneurNotFound)),
			wantStatus: http.StatusNotFound,
			wantCode:   "ENT-020001",
		},
		{
			name:       "invalid range",
			err:        domainerror.NewAnalyticsError(domainerror.ErrCodeInvalidRangeKey, "unknown range", domainerror.ErrInvalidRangeKey),
			wantStatus: http.StatusBadRequest,
			wantCode:   "ANL-010001",
		},
		{
			name:       "goal not found",
			err:        domainerror.NewGoalError(domainerror.ErrCodeGoalNotFound, "missing", domainerror.ErrGoalNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "GOL-010001",
		},
		{
			name:       "empty report period",
			err:        domainerror.NewReportError(domainerror.ErrCodeNoTransactions, "no transactions", nil),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "RPT-010002",
		},
		{
			name:       "drafter not configured",
			err:        domainerror.NewReportError(domainerror.ErrCodeReportNotConfigured, "not configured", nil),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "RPT-020001",
		},
		{
			name:       "drafter rate limited",
			err:        domainerror.NewReportError(domainerror.ErrCodeReportRateLimited, "quota", nil),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "RPT-020002",
		},
		{
			name:       "drafter timeout",
			err:        domainerror.NewReportError(domainerror.ErrCodeReportTimeout, "timeout", nil),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "RPT-020004",
		},
		{
			name:       "malformed draft",
			err:        domainerror.NewReportError(domainerror.ErrCodeReportMalformed, "malformed", nil),
			wantStatus: http.StatusBadGateway,
			wantCode:   "RPT-020005",
		},
		{
			name:       "email exists",
			err:        domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "exists", domainerror.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantCode:   "AUTH-010001",
		},
		{
			name:       "admin required",
			err:        domainerror.NewAuthError(domainerror.ErrCodeAdminRequired, "admin", domainerror.ErrAdminRequired),
			wantStatus: http.StatusForbidden,
			wantCode:   "AUTH-010004",
		},
		{
			name:       "bad credentials",
			err:        domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid", nil),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH-020001",
		},
		{
			name:       "weak password",
			err:        domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, "weak", domainerror.ErrWeakPassword),
			wantStatus: http.StatusBadRequest,
			wantCode:   "AUTH-010002",
		},
		{
			name:       "missing recipient",
			err:        domainerror.NewEmailError(domainerror.ErrCodeMissingRecipient, "no address", domainerror.ErrMissingRecipient),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "EML-010003",
		},
		{
			name:       "untyped",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := classify(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/reports/abc", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, ok := pathID(ctx, "id", string(domainerror.ErrCodeReportNotFound))

	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RPT-010001")
}

func TestHealthController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	up := func() bool { return true }
	down := func() bool { return false }

	tests := []struct {
		name       string
		db, redis  HealthChecker
		wantStatus int
		wantBody   string
	}{
		{name: "all up", db: up, redis: up, wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "redis down", db: up, redis: down, wantStatus: http.StatusOK, wantBody: `"redis":"disconnected"`},
		{name: "database down", db: down, redis: up, wantStatus: http.StatusServiceUnavailable, wantBody: `"status":"degraded"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			NewHealthController(tt.db, tt.redis).Check(ctx)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
