// Package entrepreneur contains entrepreneur and goal use cases.
package entrepreneur

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
)

// UpdateEntrepreneurInput represents the input for editing an entrepreneur.
// Nil fields are left unchanged.
type UpdateEntrepreneurInput struct {
	ID           uuid.UUID
	Name         *string
	BusinessName *string
	Email        *string
	Phone        *string
	StartDate    *string
}

// UpdateEntrepreneurOutput represents the output of editing an entrepreneur.
type UpdateEntrepreneurOutput struct {
	Entrepreneur *entity.Entrepreneur
}

// UpdateEntrepreneurUseCase handles entrepreneur edits.
type UpdateEntrepreneurUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	notifier         adapter.ChangeNotifier
}

// NewUpdateEntrepreneurUseCase creates a new UpdateEntrepreneurUseCase instance.
func NewUpdateEntrepreneurUseCase(
	entrepreneurRepo adapter.EntrepreneurRepository,
	notifier adapter.ChangeNotifier,
) *UpdateEntrepreneurUseCase {
	return &UpdateEntrepreneurUseCase{
		entrepreneurRepo: entrepreneurRepo,
		notifier:         notifier,
	}
}

// Execute performs the edit.
func (uc *UpdateEntrepreneurUseCase) Execute(ctx context.Context, input UpdateEntrepreneurInput) (*UpdateEntrepreneurOutput, error) {
	e, err := findEntrepreneur(ctx, uc.entrepreneurRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		e.Name = strings.TrimSpace(*input.Name)
	}
	if input.BusinessName != nil {
		e.BusinessName = strings.TrimSpace(*input.BusinessName)
	}
	if input.Email != nil {
		e.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		e.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.StartDate != nil {
		startDate, err := parseStartDate(*input.StartDate)
		if err != nil {
			return nil, err
		}
		e.StartDate = startDate
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	e.UpdatedAt = time.Now().UTC()
	if err := uc.entrepreneurRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to save entrepreneur: %w", err)
	}
	adapter.NotifyChanges(ctx, uc.notifier, adapter.CollectionEntrepreneurs)

	return &UpdateEntrepreneurOutput{
		Entrepreneur: e,
	}, nil
}
