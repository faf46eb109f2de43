// Package entrepreneur contains entrepreneur and goal use cases.
package entrepreneur

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
)

// GetEntrepreneurSummaryInput represents the input for the entrepreneur detail view.
type GetEntrepreneurSummaryInput struct {
	ID    uuid.UUID
	Range string
}

// Comparisons holds the previous-period comparison of one entrepreneur's figures.
type Comparisons struct {
	Income           analytics.Comparison
	Expenses         analytics.Comparison
	Net              analytics.Comparison
	TransactionCount analytics.Comparison
}

// GetEntrepreneurSummaryOutput is the entrepreneur detail view.
type GetEntrepreneurSummaryOutput struct {
	Entrepreneur   *entity.Entrepreneur
	Range          analytics.Range
	PreviousRange  *analytics.Range
	Summary        analytics.Summary
	Comparisons    *Comparisons // nil for the "all" range
	Granularity    analytics.Granularity
	Chart          []analytics.ComparisonPoint
	RecentActivity []analytics.ActivityEvent
	Goals          []GoalWithProgress
}

// GetEntrepreneurSummaryUseCase builds the detail view of one entrepreneur.
type GetEntrepreneurSummaryUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	transactionRepo  adapter.TransactionRepository
	clock            adapter.Clock
	topN             int
	recentActivity   int
}

// NewGetEntrepreneurSummaryUseCase creates a new GetEntrepreneurSummaryUseCase instance.
func NewGetEntrepreneurSummaryUseCase(
	entrepreneurRepo adapter.EntrepreneurRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	topN int,
	recentActivity int,
) *GetEntrepreneurSummaryUseCase {
	if recentActivity <= 0 {
		recentActivity = analytics.DefaultRecentActivity
	}
	return &GetEntrepreneurSummaryUseCase{
		entrepreneurRepo: entrepreneurRepo,
		transactionRepo:  transactionRepo,
		clock:            clock,
		topN:             topN,
		recentActivity:   recentActivity,
	}
}

// Execute computes the detail view.
func (uc *GetEntrepreneurSummaryUseCase) Execute(
	ctx context.Context,
	input GetEntrepreneurSummaryInput,
) (*GetEntrepreneurSummaryOutput, error) {
	if input.Range == "" {
		input.Range = string(analytics.Range30Days)
	}

	now := uc.clock.Now()
	current, previous, err := analytics.ResolveRanges(input.Range, now)
	if err != nil {
		return nil, err
	}

	e, err := findEntrepreneur(ctx, uc.entrepreneurRepo, input.ID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByEntrepreneur(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	self := []*entity.Entrepreneur{e}
	opts := analytics.Options{TopN: uc.topN}
	summary := analytics.Aggregate(transactions, self, current, opts)

	output := &GetEntrepreneurSummaryOutput{
		Entrepreneur:  e,
		Range:         current,
		PreviousRange: previous,
		Summary:       summary,
		Granularity:   analytics.GranularityFor(current.Start, current.End),
		Chart:         analytics.ChartSeries(transactions, current, previous),
		RecentActivity: analytics.MergeRecentActivity(
			analytics.TransactionEvents(transactions, entity.EntrepreneurNames(self)),
			uc.recentActivity,
		),
		Goals: evaluateGoals(e, transactions, now),
	}

	if previous != nil {
		prior := analytics.Aggregate(transactions, self, *previous, opts)
		output.Comparisons = &Comparisons{
			Income:           analytics.Trend(summary.Income, prior.Income, false),
			Expenses:         analytics.Trend(summary.Expenses, prior.Expenses, true),
			Net:              analytics.Trend(summary.Net, prior.Net, false),
			TransactionCount: analytics.TrendCount(summary.TransactionCount, prior.TransactionCount, false),
		}
	}

	return output, nil
}
