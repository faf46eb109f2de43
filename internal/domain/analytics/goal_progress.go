// Package analytics derives period-scoped summaries, chart series, rankings and
// goal progress from a snapshot of the ledger.
package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

// GoalStatus is the derived state of a goal relative to now.
type GoalStatus string

const (
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusOverdue   GoalStatus = "overdue"
	GoalStatusDueSoon   GoalStatus = "due_soon"
	GoalStatusOnTrack   GoalStatus = "on_track"
)

// DueSoonDays is the number of remaining days at or below which a goal is due soon.
const DueSoonDays = 7

// GoalProgress is the evaluation of one goal.
type GoalProgress struct {
	GoalID        uuid.UUID
	Period        ExplicitPeriod
	CurrentValue  decimal.Decimal
	TargetValue   decimal.Decimal
	Percent       float64
	Status        GoalStatus
	DaysRemaining int
	IsMilestone   bool
}

// EvaluateGoal computes the progress of goal over the calendar month of its
// target date. txs are expected to belong to the goal's entrepreneur.
//
// Custom milestones carry no numeric progress and are never completed here;
// their status only reflects the deadline.
func EvaluateGoal(goal *entity.Goal, txs []*entity.Transaction, now time.Time) GoalProgress {
	period := MonthOf(goal.TargetDate)
	progress := GoalProgress{
		GoalID:        goal.ID,
		Period:        period,
		CurrentValue:  decimal.Zero,
		TargetValue:   goal.TargetValue,
		DaysRemaining: DaysRemaining(goal.TargetDate, now),
		IsMilestone:   goal.IsMilestone(),
	}

	if !progress.IsMilestone {
		totals := ComputeTotals(FilterTransactions(txs, period))
		switch goal.Type {
		case entity.GoalTypeRevenueTarget:
			progress.CurrentValue = totals.Income
		case entity.GoalTypeProfitTarget:
			progress.CurrentValue = totals.Net
		case entity.GoalTypeExpenseReduction:
			progress.CurrentValue = totals.Expenses
		}
		progress.Percent = percentOf(progress.CurrentValue, goal.TargetValue)
	}

	switch {
	case !progress.IsMilestone && targetReached(goal, progress.CurrentValue):
		progress.Status = GoalStatusCompleted
	case progress.DaysRemaining < 0:
		progress.Status = GoalStatusOverdue
	case progress.DaysRemaining <= DueSoonDays:
		progress.Status = GoalStatusDueSoon
	default:
		progress.Status = GoalStatusOnTrack
	}

	return progress
}

// DaysRemaining returns ceil((target - now) / 1 day) with target taken as
// midnight of its date in now's location. That is the difference between
// the two calendar dates, so a partial day counts as a whole one.
func DaysRemaining(target, now time.Time) int {
	return int(calendarDay(target).Sub(calendarDay(now)).Hours() / 24)
}

func targetReached(goal *entity.Goal, current decimal.Decimal) bool {
	if goal.Type == entity.GoalTypeExpenseReduction {
		return current.LessThanOrEqual(goal.TargetValue)
	}
	return current.GreaterThanOrEqual(goal.TargetValue)
}
