// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
)

// GetChartSeriesInput represents the input for a chart series.
// A nil EntrepreneurID charts the whole portfolio.
type GetChartSeriesInput struct {
	Range          string
	EntrepreneurID *uuid.UUID
}

// GetChartSeriesOutput represents a bucketed income/expense series.
type GetChartSeriesOutput struct {
	Range         analytics.Range
	PreviousRange *analytics.Range
	Granularity   analytics.Granularity
	Points        []analytics.ComparisonPoint
}

// GetChartSeriesUseCase buckets the ledger over a range.
type GetChartSeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetChartSeriesUseCase creates a new GetChartSeriesUseCase instance.
func NewGetChartSeriesUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetChartSeriesUseCase {
	return &GetChartSeriesUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute builds the chart series.
func (uc *GetChartSeriesUseCase) Execute(ctx context.Context, input GetChartSeriesInput) (*GetChartSeriesOutput, error) {
	if input.Range == "" {
		input.Range = DefaultRange
	}

	current, previous, err := analytics.ResolveRanges(input.Range, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var transactions []*entity.Transaction
	if input.EntrepreneurID != nil {
		transactions, err = uc.transactionRepo.FindByEntrepreneur(ctx, *input.EntrepreneurID)
	} else {
		transactions, err = uc.transactionRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &GetChartSeriesOutput{
		Range:         current,
		PreviousRange: previous,
		Granularity:   analytics.GranularityFor(current.Start, current.End),
		Points:        analytics.ChartSeries(transactions, current, previous),
	}, nil
}
