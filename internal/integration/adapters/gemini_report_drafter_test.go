package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func TestClassifyDraftError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code domainerror.ReportErrorCode
	}{
		{name: "deadline", err: context.DeadlineExceeded, code: domainerror.ErrCodeReportTimeout},
		{name: "quota", err: errors.New("googleapi: Error 429: Resource has been exhausted (e.g. check quota)"), code: domainerror.ErrCodeReportRateLimited},
		{name: "bad key", err: errors.New("API key not valid. Please pass a valid API key."), code: domainerror.ErrCodeReportAuthError},
		{name: "unavailable", err: errors.New("rpc error: code = Unavailable desc = connection refused"), code: domainerror.ErrCodeReportUnavailable},
		{name: "decode", err: errors.New("failed to decode body"), code: domainerror.ErrCodeReportMalformed},
		{name: "other", err: errors.New("something odd"), code: domainerror.ErrCodeReportUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reportErr *domainerror.ReportError
			require.True(t, errors.As(classifyDraftError(tt.err), &reportErr))
			assert.Equal(t, tt.code, reportErr.Code)
		})
	}
}

func TestParseReportDraft(t *testing.T) {
	draft, err := parseReportDraft("```json\n{\"summary\":\"Good month.\",\"highlights\":[\"Sales up\"],\"metrics\":[{\"label\":\"Net\",\"value\":\"300\"}]}\n```")
	require.NoError(t, err)

	assert.Equal(t, "Good month.", draft.Summary)
	assert.Equal(t, []string{"Sales up"}, draft.Highlights)
	assert.NotNil(t, draft.Recommendations)
	assert.NotNil(t, draft.Tables)
	require.Len(t, draft.Metrics, 1)
	assert.Equal(t, "Net", draft.Metrics[0].Label)
}

func TestParseReportDraft_Malformed(t *testing.T) {
	for _, text := range []string{"not json", `{"highlights":[]}`} {
		_, err := parseReportDraft(text)
		assert.True(t, errors.Is(err, domainerror.ErrReportMalformedResponse), text)
	}
}

func TestGeminiReportDrafter_NotConfigured(t *testing.T) {
	drafter := NewGeminiReportDrafter("", "", 0)
	assert.False(t, drafter.IsAvailable())

	_, err := drafter.Draft(context.Background(), &adapter.ReportDraftRequest{})
	assert.True(t, errors.Is(err, domainerror.ErrReportServiceNotConfigured))
}

func TestBuildReportPrompt(t *testing.T) {
	e := entity.NewEntrepreneur("Ada", "Ada's Kitchen", "", "", timeOf("2024-01-01"))
	tx := entity.NewTransaction(uuid.New(), entity.TransactionTypeIncome, timeOf("2024-03-02"),
		decimal.NewFromInt(300), entity.PaymentMethodCash, nil, "Mo", "Catering", "")

	prompt := buildReportPrompt(&adapter.ReportDraftRequest{
		Entrepreneur: e,
		PeriodLabel:  "March 2024",
		Transactions: []*entity.Transaction{tx},
		Summary:      analytics.Aggregate([]*entity.Transaction{tx}, nil, analytics.MonthOf(tx.Date), analytics.Options{}),
	})

	assert.Contains(t, prompt, "BUSINESS: Ada's Kitchen")
	assert.Contains(t, prompt, "- Total income: 300.00 (1 transactions)")
	assert.Contains(t, prompt, "- Catering: 300.00 (100.00%)")
	assert.True(t, strings.Contains(prompt, "2024-03-02 income 300.00 Catering Mo"))
}
