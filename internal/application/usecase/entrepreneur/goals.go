// Package entrepreneur contains entrepreneur and goal use cases.
package entrepreneur

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// GoalWithProgress pairs a goal with its evaluation.
type GoalWithProgress struct {
	Goal     entity.Goal
	Progress analytics.GoalProgress
}

func evaluateGoals(e *entity.Entrepreneur, transactions []*entity.Transaction, now time.Time) []GoalWithProgress {
	goals := make([]GoalWithProgress, 0, len(e.Goals))
	for i := range e.Goals {
		goal := e.Goals[i]
		goals = append(goals, GoalWithProgress{
			Goal:     goal,
			Progress: analytics.EvaluateGoal(&goal, transactions, now),
		})
	}
	return goals
}

// AddGoalInput represents the input for adding a goal to an entrepreneur.
type AddGoalInput struct {
	EntrepreneurID uuid.UUID
	Title          string
	Type           string
	TargetValue    string // decimal; ignored for custom milestones
	TargetDate     string // YYYY-MM-DD
}

// AddGoalOutput represents the output of adding a goal.
type AddGoalOutput struct {
	Goal GoalWithProgress
}

// AddGoalUseCase appends a goal to an entrepreneur.
type AddGoalUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	transactionRepo  adapter.TransactionRepository
	notifier         adapter.ChangeNotifier
	clock            adapter.Clock
}

// NewAddGoalUseCase creates a new AddGoalUseCase instance.
func NewAddGoalUseCase(
	entrepreneurRepo adapter.EntrepreneurRepository,
	transactionRepo adapter.TransactionRepository,
	notifier adapter.ChangeNotifier,
	clock adapter.Clock,
) *AddGoalUseCase {
	return &AddGoalUseCase{
		entrepreneurRepo: entrepreneurRepo,
		transactionRepo:  transactionRepo,
		notifier:         notifier,
		clock:            clock,
	}
}

// Execute validates and stores the goal.
func (uc *AddGoalUseCase) Execute(ctx context.Context, input AddGoalInput) (*AddGoalOutput, error) {
	targetDate, err := entity.ParseLedgerDate(input.TargetDate)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDate,
			"target_date must be YYYY-MM-DD",
			domainerror.ErrInvalidGoalDate,
		)
	}

	goalType := entity.GoalType(strings.TrimSpace(input.Type))
	targetValue := decimal.Zero
	if goalType != entity.GoalTypeCustomMilestone {
		targetValue, err = parseTargetValue(input.TargetValue)
		if err != nil {
			return nil, err
		}
	}

	e, err := findEntrepreneur(ctx, uc.entrepreneurRepo, input.EntrepreneurID)
	if err != nil {
		return nil, err
	}

	goal := entity.NewGoal(e.ID, input.Title, goalType, targetValue, targetDate)
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entrepreneurRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	adapter.NotifyChanges(ctx, uc.notifier, adapter.CollectionEntrepreneurs)

	transactions, err := uc.transactionRepo.FindByEntrepreneur(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &AddGoalOutput{
		Goal: GoalWithProgress{
			Goal:     *goal,
			Progress: analytics.EvaluateGoal(goal, transactions, uc.clock.Now()),
		},
	}, nil
}

func parseTargetValue(value string) (decimal.Decimal, error) {
	target, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || !target.IsPositive() {
		return decimal.Zero, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target_value must be a positive number",
			domainerror.ErrInvalidTargetValue,
		)
	}
	return target, nil
}

// DeleteGoalInput represents the input for removing a goal.
type DeleteGoalInput struct {
	EntrepreneurID uuid.UUID
	GoalID         uuid.UUID
}

// DeleteGoalUseCase removes a goal from an entrepreneur.
type DeleteGoalUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	notifier         adapter.ChangeNotifier
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(entrepreneurRepo adapter.EntrepreneurRepository, notifier adapter.ChangeNotifier) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		entrepreneurRepo: entrepreneurRepo,
		notifier:         notifier,
	}
}

// Execute performs the removal.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.entrepreneurRepo.DeleteGoal(ctx, input.EntrepreneurID, input.GoalID); err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	adapter.NotifyChanges(ctx, uc.notifier, adapter.CollectionEntrepreneurs)
	return nil
}

// GetGoalProgressUseCase evaluates every goal of an entrepreneur.
type GetGoalProgressUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	transactionRepo  adapter.TransactionRepository
	clock            adapter.Clock
}

// NewGetGoalProgressUseCase creates a new GetGoalProgressUseCase instance.
func NewGetGoalProgressUseCase(
	entrepreneurRepo adapter.EntrepreneurRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetGoalProgressUseCase {
	return &GetGoalProgressUseCase{
		entrepreneurRepo: entrepreneurRepo,
		transactionRepo:  transactionRepo,
		clock:            clock,
	}
}

// Execute returns the goals in insertion order with their progress.
func (uc *GetGoalProgressUseCase) Execute(ctx context.Context, entrepreneurID uuid.UUID) ([]GoalWithProgress, error) {
	e, err := findEntrepreneur(ctx, uc.entrepreneurRepo, entrepreneurID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByEntrepreneur(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return evaluateGoals(e, transactions, uc.clock.Now()), nil
}
