// Package entrepreneur contains entrepreneur and goal use cases.
package entrepreneur

import (
	"context"
	"fmt"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
)

// CreateEntrepreneurInput represents the input for enrolling an entrepreneur.
type CreateEntrepreneurInput struct {
	Name         string
	BusinessName string
	Email        string
	Phone        string
	StartDate    string // YYYY-MM-DD
}

// CreateEntrepreneurOutput represents the output of enrolling an entrepreneur.
type CreateEntrepreneurOutput struct {
	Entrepreneur *entity.Entrepreneur
}

// CreateEntrepreneurUseCase handles enrolling an entrepreneur in the programme.
type CreateEntrepreneurUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	notifier         adapter.ChangeNotifier
}

// NewCreateEntrepreneurUseCase creates a new CreateEntrepreneurUseCase instance.
func NewCreateEntrepreneurUseCase(
	entrepreneurRepo adapter.EntrepreneurRepository,
	notifier adapter.ChangeNotifier,
) *CreateEntrepreneurUseCase {
	return &CreateEntrepreneurUseCase{
		entrepreneurRepo: entrepreneurRepo,
		notifier:         notifier,
	}
}

// Execute performs the enrolment.
func (uc *CreateEntrepreneurUseCase) Execute(ctx context.Context, input CreateEntrepreneurInput) (*CreateEntrepreneurOutput, error) {
	startDate, err := parseStartDate(input.StartDate)
	if err != nil {
		return nil, err
	}

	e := entity.NewEntrepreneur(input.Name, input.BusinessName, input.Email, input.Phone, startDate)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entrepreneurRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to save entrepreneur: %w", err)
	}
	adapter.NotifyChanges(ctx, uc.notifier, adapter.CollectionEntrepreneurs)

	return &CreateEntrepreneurOutput{
		Entrepreneur: e,
	}, nil
}
