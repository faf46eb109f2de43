// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// maxPromptTransactions caps the ledger lines quoted verbatim in the prompt.
const maxPromptTransactions = 200

// GeminiReportDrafter implements adapter.ReportDrafter using Google Gemini.
type GeminiReportDrafter struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiReportDrafter creates a new Gemini report drafter.
func NewGeminiReportDrafter(apiKey, modelName string, timeout time.Duration) *GeminiReportDrafter {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiReportDrafter{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
	}
}

// IsAvailable reports whether an API key is configured.
func (d *GeminiReportDrafter) IsAvailable() bool {
	return d.apiKey != ""
}

// Draft asks Gemini for a structured report. Every failure is returned as a
// classified *domainerror.ReportError.
func (d *GeminiReportDrafter) Draft(ctx context.Context, request *adapter.ReportDraftRequest) (*entity.ReportDraft, error) {
	if !d.IsAvailable() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportNotConfigured,
			"report drafting service is not configured",
			domainerror.ErrReportServiceNotConfigured,
		)
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(d.apiKey))
	if err != nil {
		return nil, classifyDraftError(fmt.Errorf("failed to create gemini client: %w", err))
	}
	defer client.Close()

	model := client.GenerativeModel(d.modelName)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildReportPrompt(request)))
	if err != nil {
		return nil, classifyDraftError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, malformedDraft(err)
	}

	return parseReportDraft(text)
}

// buildReportPrompt renders the request as an English prompt with the
// pre-computed figures, so the model narrates numbers instead of computing them.
func buildReportPrompt(request *adapter.ReportDraftRequest) string {
	var sb strings.Builder
	s := request.Summary

	sb.WriteString("You are a business advisor writing a period report for a small-business owner.\n")
	sb.WriteString("Use only the figures given below. Do not invent numbers.\n\n")

	name := entity.UnknownEntrepreneurName
	if request.Entrepreneur != nil {
		name = request.Entrepreneur.DisplayName()
	}
	fmt.Fprintf(&sb, "BUSINESS: %s\nPERIOD: %s\n\n", name, request.PeriodLabel)

	sb.WriteString("FIGURES:\n")
	fmt.Fprintf(&sb, "- Total income: %s (%d transactions)\n", s.Income.StringFixed(2), s.IncomeCount)
	fmt.Fprintf(&sb, "- Total expenses: %s (%d transactions)\n", s.Expenses.StringFixed(2), s.ExpenseCount)
	fmt.Fprintf(&sb, "- Net income: %s\n", s.Net.StringFixed(2))
	fmt.Fprintf(&sb, "- Profit margin: %.2f%%\n", s.ProfitMargin)
	fmt.Fprintf(&sb, "- Outstanding receivables: %s (%d invoices)\n", s.Outstanding.StringFixed(2), s.OutstandingCount)
	fmt.Fprintf(&sb, "- Collection rate: %.2f%%\n", s.CollectionRate)
	fmt.Fprintf(&sb, "- Full payment rate: %.2f%%\n", s.FullPaymentRate)

	if len(s.IncomeByCategory) > 0 {
		sb.WriteString("\nINCOME BY CATEGORY:\n")
		for _, c := range s.IncomeByCategory {
			fmt.Fprintf(&sb, "- %s: %s (%.2f%%)\n", c.Category, c.Amount.StringFixed(2), c.Percentage)
		}
	}
	if len(s.ExpenseByCategory) > 0 {
		sb.WriteString("\nEXPENSES BY CATEGORY:\n")
		for _, c := range s.ExpenseByCategory {
			fmt.Fprintf(&sb, "- %s: %s (%.2f%%)\n", c.Category, c.Amount.StringFixed(2), c.Percentage)
		}
	}
	if len(s.TopCustomers) > 0 {
		sb.WriteString("\nTOP CUSTOMERS:\n")
		for _, c := range s.TopCustomers {
			fmt.Fprintf(&sb, "- %s: %s over %d purchases\n", c.Name, c.Amount.StringFixed(2), c.TransactionCount)
		}
	}

	sb.WriteString("\nTRANSACTIONS:\n")
	for i, tx := range request.Transactions {
		if i == maxPromptTransactions {
			fmt.Fprintf(&sb, "- ... %d more\n", len(request.Transactions)-maxPromptTransactions)
			break
		}
		fmt.Fprintf(&sb, "- %s %s %s %s %s\n", tx.DateKey(), tx.Type, tx.Amount.StringFixed(2),
			tx.ProductServiceCategory, tx.CustomerName)
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "summary": "two or three sentences",
  "highlights": ["short statements"],
  "recommendations": ["actionable advice"],
  "metrics": [{"label": "string", "value": "string"}],
  "tables": [{"title": "string", "columns": ["string"], "rows": [["string"]]}]
}
Return only the JSON object, without additional text.
`)

	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}
	return "", errors.New("no text content in response")
}

// parseReportDraft decodes the model output, tolerating a markdown code fence.
func parseReportDraft(text string) (*entity.ReportDraft, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var draft entity.ReportDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, malformedDraft(fmt.Errorf("failed to parse JSON response: %w", err))
	}
	if strings.TrimSpace(draft.Summary) == "" {
		return nil, malformedDraft(errors.New("response has no summary"))
	}

	if draft.Highlights == nil {
		draft.Highlights = []string{}
	}
	if draft.Recommendations == nil {
		draft.Recommendations = []string{}
	}
	if draft.Metrics == nil {
		draft.Metrics = []entity.ReportMetric{}
	}
	if draft.Tables == nil {
		draft.Tables = []entity.ReportTable{}
	}
	return &draft, nil
}

func malformedDraft(err error) error {
	return domainerror.NewReportError(
		domainerror.ErrCodeReportMalformed,
		"report drafting service returned a malformed response",
		errors.Join(domainerror.ErrReportMalformedResponse, err),
	)
}

// classifyDraftError maps a transport or API failure to a ReportError code.
func classifyDraftError(err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return domainerror.NewReportError(domainerror.ErrCodeReportTimeout,
			"report drafting timed out", err)
	case containsAny(msg, "rate limit", "quota", "429", "resource exhausted"):
		return domainerror.NewReportError(domainerror.ErrCodeReportRateLimited,
			"report drafting service is rate limited", err)
	case containsAny(msg, "401", "403", "api key", "unauthorized", "permission denied", "authentication"):
		return domainerror.NewReportError(domainerror.ErrCodeReportAuthError,
			"report drafting service rejected the credentials", err)
	case containsAny(msg, "connection", "network", "dial", "timeout", "unavailable", "503"):
		return domainerror.NewReportError(domainerror.ErrCodeReportUnavailable,
			"report drafting service is unavailable", err)
	case containsAny(msg, "parse", "json", "unmarshal", "decode"):
		return malformedDraft(err)
	default:
		return domainerror.NewReportError(domainerror.ErrCodeReportUnknown,
			"report drafting failed", err)
	}
}

func containsAny(s string, patterns ...string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// Ensure GeminiReportDrafter implements adapter.ReportDrafter.
var _ adapter.ReportDrafter = (*GeminiReportDrafter)(nil)
