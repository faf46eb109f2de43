// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
)

// DefaultRange is used when a request names no range.
const DefaultRange = "30d"

// GetDashboardInput represents the input for the portfolio dashboard.
type GetDashboardInput struct {
	Range string
}

// Comparisons holds the previous-period comparison of the headline metrics.
type Comparisons struct {
	Income           analytics.Comparison
	Expenses         analytics.Comparison
	Net              analytics.Comparison
	TransactionCount analytics.Comparison
	NewEntrepreneurs analytics.Comparison
}

// GoalAlert is a goal that is due soon or overdue.
type GoalAlert struct {
	EntrepreneurID   uuid.UUID
	EntrepreneurName string
	Goal             entity.Goal
	Progress         analytics.GoalProgress
}

// GetDashboardOutput represents the output of the portfolio dashboard.
type GetDashboardOutput struct {
	Range          analytics.Range
	PreviousRange  *analytics.Range
	Summary        analytics.Summary
	Comparisons    *Comparisons // nil for the "all" range
	Granularity    analytics.Granularity
	Chart          []analytics.ComparisonPoint
	RecentActivity []analytics.ActivityEvent
	GoalAlerts     []GoalAlert
}

// GetDashboardUseCase builds the portfolio-wide dashboard.
type GetDashboardUseCase struct {
	transactionRepo  adapter.TransactionRepository
	entrepreneurRepo adapter.EntrepreneurRepository
	clock            adapter.Clock
	topN             int
	recentActivity   int
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	transactionRepo adapter.TransactionRepository,
	entrepreneurRepo adapter.EntrepreneurRepository,
	clock adapter.Clock,
	topN int,
	recentActivity int,
) *GetDashboardUseCase {
	if recentActivity <= 0 {
		recentActivity = analytics.DefaultRecentActivity
	}
	return &GetDashboardUseCase{
		transactionRepo:  transactionRepo,
		entrepreneurRepo: entrepreneurRepo,
		clock:            clock,
		topN:             topN,
		recentActivity:   recentActivity,
	}
}

// Execute computes the dashboard for the requested range.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	if input.Range == "" {
		input.Range = DefaultRange
	}

	current, previous, err := analytics.ResolveRanges(input.Range, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	snapshot, err := loadSnapshot(ctx, uc.transactionRepo, uc.entrepreneurRepo)
	if err != nil {
		return nil, err
	}

	opts := analytics.Options{TopN: uc.topN}
	summary := analytics.Aggregate(snapshot.Transactions, snapshot.Entrepreneurs, current, opts)

	output := &GetDashboardOutput{
		Range:          current,
		PreviousRange:  previous,
		Summary:        summary,
		Granularity:    analytics.GranularityFor(current.Start, current.End),
		Chart:          analytics.ChartSeries(snapshot.Transactions, current, previous),
		RecentActivity: uc.recent(snapshot),
		GoalAlerts:     goalAlerts(snapshot, uc.clock),
	}

	if previous != nil {
		prior := analytics.Aggregate(snapshot.Transactions, snapshot.Entrepreneurs, *previous, opts)
		output.Comparisons = compare(summary, prior)
	}

	return output, nil
}

func (uc *GetDashboardUseCase) recent(snapshot *ledgerSnapshot) []analytics.ActivityEvent {
	names := entity.EntrepreneurNames(snapshot.Entrepreneurs)
	events := analytics.TransactionEvents(snapshot.Transactions, names)
	events = append(events, analytics.EntrepreneurEvents(snapshot.Entrepreneurs)...)
	return analytics.MergeRecentActivity(events, uc.recentActivity)
}

func compare(current, previous analytics.Summary) *Comparisons {
	return &Comparisons{
		Income:           analytics.Trend(current.Income, previous.Income, false),
		Expenses:         analytics.Trend(current.Expenses, previous.Expenses, true),
		Net:              analytics.Trend(current.Net, previous.Net, false),
		TransactionCount: analytics.TrendCount(current.TransactionCount, previous.TransactionCount, false),
		NewEntrepreneurs: analytics.TrendCount(current.NewEntrepreneurs, previous.NewEntrepreneurs, false),
	}
}

// goalAlerts evaluates every goal and keeps the due-soon and overdue ones,
// most urgent first.
func goalAlerts(snapshot *ledgerSnapshot, clock adapter.Clock) []GoalAlert {
	byEntrepreneur := make(map[uuid.UUID][]*entity.Transaction)
	for _, tx := range snapshot.Transactions {
		byEntrepreneur[tx.EntrepreneurID] = append(byEntrepreneur[tx.EntrepreneurID], tx)
	}

	now := clock.Now()
	alerts := make([]GoalAlert, 0)
	for _, e := range snapshot.Entrepreneurs {
		for i := range e.Goals {
			goal := e.Goals[i]
			progress := analytics.EvaluateGoal(&goal, byEntrepreneur[e.ID], now)
			if progress.Status != analytics.GoalStatusDueSoon && progress.Status != analytics.GoalStatusOverdue {
				continue
			}
			alerts = append(alerts, GoalAlert{
				EntrepreneurID:   e.ID,
				EntrepreneurName: e.DisplayName(),
				Goal:             goal,
				Progress:         progress,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Progress.DaysRemaining < alerts[j].Progress.DaysRemaining
	})
	return alerts
}
