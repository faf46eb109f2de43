package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bizportal/backend/internal/domain/entity"
)

func goal(goalType entity.GoalType, target, targetDate string) *entity.Goal {
	return entity.NewGoal(testEntrepreneurID, "goal", goalType, dec(target), day(targetDate))
}

func TestEvaluateGoal_RevenueCompletedRegardlessOfDeadline(t *testing.T) {
	g := goal(entity.GoalTypeRevenueTarget, "1000", "2024-03-15")
	txs := []*entity.Transaction{
		income("2024-03-01", "700"),
		income("2024-03-28", "500"),
		income("2024-04-01", "9999"),
	}

	for _, now := range []time.Time{day("2024-03-01"), day("2024-06-01")} {
		p := EvaluateGoal(g, txs, now)
		assert.True(t, p.CurrentValue.Equal(dec("1200")))
		assert.Equal(t, GoalStatusCompleted, p.Status)
		assert.Equal(t, 120.0, p.Percent)
	}
}

func TestEvaluateGoal_Statuses(t *testing.T) {
	g := goal(entity.GoalTypeRevenueTarget, "1000", "2024-03-15")
	txs := []*entity.Transaction{income("2024-03-02", "100")}

	tests := []struct {
		name     string
		now      time.Time
		status   GoalStatus
		daysLeft int
	}{
		{name: "on track", now: day("2024-03-01"), status: GoalStatusOnTrack, daysLeft: 14},
		{name: "due soon boundary", now: day("2024-03-08"), status: GoalStatusDueSoon, daysLeft: 7},
		{name: "due today", now: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC), status: GoalStatusDueSoon, daysLeft: 0},
		{name: "partial day rounds up", now: time.Date(2024, time.March, 7, 12, 0, 0, 0, time.UTC), status: GoalStatusOnTrack, daysLeft: 8},
		{name: "overdue", now: day("2024-03-18"), status: GoalStatusOverdue, daysLeft: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EvaluateGoal(g, txs, tt.now)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.daysLeft, p.DaysRemaining)
		})
	}
}

func TestEvaluateGoal_DeadlineInClockLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	g := goal(entity.GoalTypeRevenueTarget, "1000", "2024-03-15")

	tests := []struct {
		name     string
		now      time.Time
		status   GoalStatus
		daysLeft int
	}{
		{name: "day after deadline", now: time.Date(2024, time.March, 16, 1, 0, 0, 0, jst), status: GoalStatusOverdue, daysLeft: -1},
		{name: "deadline day still on the 14th in UTC", now: time.Date(2024, time.March, 15, 8, 0, 0, 0, jst), status: GoalStatusDueSoon, daysLeft: 0},
		{name: "late evening before", now: time.Date(2024, time.March, 14, 23, 0, 0, 0, jst), status: GoalStatusDueSoon, daysLeft: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EvaluateGoal(g, nil, tt.now)
			assert.Equal(t, tt.status, p.Status)
			assert.Equal(t, tt.daysLeft, p.DaysRemaining)
		})
	}
}

func TestEvaluateGoal_ProfitAndExpense(t *testing.T) {
	txs := []*entity.Transaction{
		income("2024-03-02", "500"),
		expense("2024-03-03", "300"),
	}
	now := day("2024-03-01")

	profit := EvaluateGoal(goal(entity.GoalTypeProfitTarget, "250", "2024-03-31"), txs, now)
	assert.True(t, profit.CurrentValue.Equal(dec("200")))
	assert.Equal(t, GoalStatusOnTrack, profit.Status)

	under := EvaluateGoal(goal(entity.GoalTypeExpenseReduction, "400", "2024-03-31"), txs, now)
	assert.True(t, under.CurrentValue.Equal(dec("300")))
	assert.Equal(t, GoalStatusCompleted, under.Status)

	over := EvaluateGoal(goal(entity.GoalTypeExpenseReduction, "200", "2024-03-31"), txs, now)
	assert.Equal(t, GoalStatusOnTrack, over.Status)
}

func TestEvaluateGoal_Milestone(t *testing.T) {
	g := goal(entity.GoalTypeCustomMilestone, "0", "2024-03-10")
	txs := []*entity.Transaction{income("2024-03-02", "500")}

	p := EvaluateGoal(g, txs, day("2024-03-12"))
	assert.True(t, p.IsMilestone)
	assert.True(t, p.CurrentValue.IsZero())
	assert.Zero(t, p.Percent)
	assert.Equal(t, GoalStatusOverdue, p.Status)
}
