package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/application/adapter/fake"
	"github.com/bizportal/backend/internal/application/usecase/entrepreneur"
	"github.com/bizportal/backend/internal/application/usecase/transaction"
	"github.com/bizportal/backend/internal/domain/entity"
	"github.com/bizportal/backend/internal/integration/entrypoint/controller"
	"github.com/bizportal/backend/internal/integration/entrypoint/middleware"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ledger := fake.NewLedger()
	entrepreneurs := ledger.Entrepreneurs()
	notifier := fake.NewNotifier()
	clock := fake.Clock{At: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}

	controllers := Controllers{
		Health: controller.NewHealthController(
			func() bool { return true },
			func() bool { return true },
		),
		Entrepreneur: controller.NewEntrepreneurController(
			entrepreneur.NewListEntrepreneursUseCase(entrepreneurs),
			entrepreneur.NewGetEntrepreneurUseCase(entrepreneurs),
			entrepreneur.NewCreateEntrepreneurUseCase(entrepreneurs, notifier),
			entrepreneur.NewUpdateEntrepreneurUseCase(entrepreneurs, notifier),
			entrepreneur.NewDeleteEntrepreneurUseCase(entrepreneurs, ledger, ledger, notifier),
			entrepreneur.NewGetEntrepreneurSummaryUseCase(entrepreneurs, ledger, clock, 5, 10),
			entrepreneur.NewAddGoalUseCase(entrepreneurs, ledger, notifier, clock),
			entrepreneur.NewDeleteGoalUseCase(entrepreneurs, notifier),
			entrepreneur.NewGetGoalProgressUseCase(entrepreneurs, ledger, clock),
		),
		Transaction: controller.NewTransactionController(
			transaction.NewListTransactionsUseCase(ledger),
			transaction.NewCreateTransactionUseCase(ledger, entrepreneurs, notifier),
			transaction.NewUpdateTransactionUseCase(ledger, notifier),
			transaction.NewDeleteTransactionUseCase(ledger, notifier),
			transaction.NewImportTransactionsUseCase(ledger, notifier),
		),
	}

	r := NewRouter(controllers, middleware.NewRateLimiter(), middleware.NewAuthMiddleware(fake.TokenService{}))
	return r.Setup("test")
}

func tokenFor(role entity.UserRole) string {
	return "token:" + uuid.NewString() + ":" + string(role)
}

func do(handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	handler := newTestRouter(t)

	w := do(handler, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	handler := newTestRouter(t)

	for _, path := range []string{"/api/v1/transactions", "/api/v1/entrepreneurs", "/api/v1/dashboard"} {
		w := do(handler, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := do(handler, http.MethodGet, "/api/v1/transactions", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_ImportRequiresAdmin(t *testing.T) {
	handler := newTestRouter(t)

	w := do(handler, http.MethodPut, "/api/v1/transactions", tokenFor(entity.UserRoleStaff), "[]")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(handler, http.MethodPut, "/api/v1/transactions", tokenFor(entity.UserRoleAdmin), "[]")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"imported_count":0}`, w.Body.String())
}

func TestRouter_RecordAndListLedger(t *testing.T) {
	handler := newTestRouter(t)
	token := tokenFor(entity.UserRoleStaff)

	w := do(handler, http.MethodPost, "/api/v1/entrepreneurs", token,
		`{"name":"Efua","business_name":"Efua Bakes","start_date":"2024-03-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(handler, http.MethodPost, "/api/v1/transactions", token,
		`{"entrepreneur_id":"`+created.ID+`","type":"income","date":"2024-06-02","amount":"120.5"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"amount":"120.50"`)

	w = do(handler, http.MethodGet, "/api/v1/transactions?period=2024-06", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Transactions []map[string]any `json:"transactions"`
		Totals       struct {
			Income string `json:"income"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Transactions, 1)
	assert.Equal(t, "120.50", list.Totals.Income)
}

func TestRouter_MalformedIDsAreNotFound(t *testing.T) {
	handler := newTestRouter(t)
	token := tokenFor(entity.UserRoleStaff)

	w := do(handler, http.MethodGet, "/api/v1/entrepreneurs/not-a-uuid", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(handler, http.MethodDelete, "/api/v1/transactions/"+uuid.NewString(), token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
