// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// GoalType represents what a goal measures.
type GoalType string

const (
	GoalTypeRevenueTarget    GoalType = "revenue_target"
	GoalTypeProfitTarget     GoalType = "profit_target"
	GoalTypeExpenseReduction GoalType = "expense_reduction"
	GoalTypeCustomMilestone  GoalType = "custom_milestone"
)

// Goal is a target an entrepreneur works towards. Its evaluation window is the
// calendar month containing TargetDate.
type Goal struct {
	ID             uuid.UUID
	EntrepreneurID uuid.UUID
	Title          string
	Type           GoalType
	TargetValue    decimal.Decimal // ignored for custom milestones
	TargetDate     time.Time
	CreatedAt      time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(entrepreneurID uuid.UUID, title string, goalType GoalType, targetValue decimal.Decimal, targetDate time.Time) *Goal {
	return &Goal{
		ID:             uuid.New(),
		EntrepreneurID: entrepreneurID,
		Title:          strings.TrimSpace(title),
		Type:           goalType,
		TargetValue:    targetValue,
		TargetDate:     NormalizeDate(targetDate),
		CreatedAt:      time.Now().UTC(),
	}
}

// IsMilestone reports whether the goal is a checklist item without numeric progress.
func (g *Goal) IsMilestone() bool {
	return g.Type == GoalTypeCustomMilestone
}

// EvaluationMonth returns the YYYY-MM prefix of the goal's target date.
func (g *Goal) EvaluationMonth() string {
	return g.TargetDate.Format("2006-01")
}

// Validate checks goal invariants.
func (g *Goal) Validate() error {
	if g.Title == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalTitle,
			"title is required",
			domainerror.ErrMissingGoalTitle,
		)
	}

	if !IsValidGoalType(g.Type) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"type must be one of: revenue_target, profit_target, expense_reduction, custom_milestone",
			domainerror.ErrInvalidGoalType,
		)
	}

	if !g.IsMilestone() && !g.TargetValue.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be greater than zero",
			domainerror.ErrInvalidTargetValue,
		)
	}

	return nil
}

// IsValidGoalType validates the goal type.
func IsValidGoalType(t GoalType) bool {
	return t == GoalTypeRevenueTarget ||
		t == GoalTypeProfitTarget ||
		t == GoalTypeExpenseReduction ||
		t == GoalTypeCustomMilestone
}
