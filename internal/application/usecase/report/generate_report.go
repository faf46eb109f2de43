// Package report contains report drafting, archive and delivery use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// GenerateReportInput represents the input for drafting a report.
type GenerateReportInput struct {
	EntrepreneurID uuid.UUID
	Period         string // YYYY or YYYY-MM
	GeneratedBy    uuid.UUID
}

// GenerateReportOutput represents a drafted and archived report.
type GenerateReportOutput struct {
	Report      *entity.Report
	PeriodLabel string
	Summary     analytics.Summary
	Cached      bool
}

// GenerateReportUseCase drafts a narrative report for one entrepreneur and period.
type GenerateReportUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	transactionRepo  adapter.TransactionRepository
	reportRepo       adapter.ReportRepository
	drafter          adapter.ReportDrafter
	cache            adapter.ReportCache
	cacheTTL         time.Duration
	topN             int
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	entrepreneurRepo adapter.EntrepreneurRepository,
	transactionRepo adapter.TransactionRepository,
	reportRepo adapter.ReportRepository,
	drafter adapter.ReportDrafter,
	cache adapter.ReportCache,
	cacheTTL time.Duration,
	topN int,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		entrepreneurRepo: entrepreneurRepo,
		transactionRepo:  transactionRepo,
		reportRepo:       reportRepo,
		drafter:          drafter,
		cache:            cache,
		cacheTTL:         cacheTTL,
		topN:             topN,
	}
}

// Execute drafts the report, or reuses the draft of an identical ledger
// slice, and archives it. Drafting failures are returned as they are and
// never retried.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	period, err := analytics.ParseExplicitPeriod(input.Period)
	if err != nil {
		return nil, err
	}

	e, err := uc.entrepreneurRepo.FindByID(ctx, input.EntrepreneurID)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerror.NewEntrepreneurError(
				domainerror.ErrCodeEntrepreneurNotFound,
				"entrepreneur not found",
				domainerror.ErrEntrepreneurNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entrepreneur: %w", err)
	}

	all, err := uc.transactionRepo.FindByEntrepreneur(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	transactions := analytics.FilterTransactions(all, period)
	if len(transactions) == 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeNoTransactions,
			"no transactions recorded for "+period.Label(),
			domainerror.ErrNoTransactionsForPeriod,
		)
	}

	summary := analytics.Aggregate(transactions, []*entity.Entrepreneur{e}, period, analytics.Options{TopN: uc.topN})
	key := draftCacheKey(e, period.Prefix, transactions)

	draft, cached := uc.cachedDraft(ctx, key)
	if !cached {
		if !uc.drafter.IsAvailable() {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportNotConfigured,
				"report drafting is not configured",
				domainerror.ErrReportServiceNotConfigured,
			)
		}

		draft, err = uc.drafter.Draft(ctx, &adapter.ReportDraftRequest{
			Entrepreneur: e,
			Period:       period.Prefix,
			PeriodLabel:  period.Label(),
			Transactions: transactions,
			Summary:      summary,
		})
		if err != nil {
			slog.Warn("Report drafting failed",
				"entrepreneur_id", e.ID,
				"period", period.Prefix,
				"error", err,
			)
			return nil, err
		}

		if uc.cache != nil {
			if err := uc.cache.Set(ctx, key, draft, uc.cacheTTL); err != nil {
				slog.Warn("Failed to cache report draft", "key", key, "error", err)
			}
		}
	}

	report := entity.NewReport(e.ID, period.Prefix, *draft, input.GeneratedBy)
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to archive report: %w", err)
	}

	slog.Info("Report generated",
		"report_id", report.ID,
		"entrepreneur_id", e.ID,
		"period", period.Prefix,
		"cached", cached,
	)

	return &GenerateReportOutput{
		Report:      report,
		PeriodLabel: period.Label(),
		Summary:     summary,
		Cached:      cached,
	}, nil
}

func (uc *GenerateReportUseCase) cachedDraft(ctx context.Context, key string) (*entity.ReportDraft, bool) {
	if uc.cache == nil {
		return nil, false
	}
	draft, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Failed to read report draft cache", "key", key, "error", err)
		return nil, false
	}
	return draft, ok
}
