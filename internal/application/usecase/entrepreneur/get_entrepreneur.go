// Package entrepreneur contains entrepreneur and goal use cases.
package entrepreneur

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
)

// GetEntrepreneurUseCase loads one entrepreneur.
type GetEntrepreneurUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
}

// NewGetEntrepreneurUseCase creates a new GetEntrepreneurUseCase instance.
func NewGetEntrepreneurUseCase(entrepreneurRepo adapter.EntrepreneurRepository) *GetEntrepreneurUseCase {
	return &GetEntrepreneurUseCase{entrepreneurRepo: entrepreneurRepo}
}

// Execute returns the entrepreneur with its goals.
func (uc *GetEntrepreneurUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Entrepreneur, error) {
	return findEntrepreneur(ctx, uc.entrepreneurRepo, id)
}

// ListEntrepreneursUseCase lists every entrepreneur.
type ListEntrepreneursUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
}

// NewListEntrepreneursUseCase creates a new ListEntrepreneursUseCase instance.
func NewListEntrepreneursUseCase(entrepreneurRepo adapter.EntrepreneurRepository) *ListEntrepreneursUseCase {
	return &ListEntrepreneursUseCase{entrepreneurRepo: entrepreneurRepo}
}

// Execute returns all entrepreneurs.
func (uc *ListEntrepreneursUseCase) Execute(ctx context.Context) ([]*entity.Entrepreneur, error) {
	entrepreneurs, err := uc.entrepreneurRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entrepreneurs: %w", err)
	}
	return entrepreneurs, nil
}
