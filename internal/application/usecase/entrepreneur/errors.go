// Package entrepreneur contains entrepreneur and goal use cases.
package entrepreneur

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func notFound() error {
	return domainerror.NewEntrepreneurError(
		domainerror.ErrCodeEntrepreneurNotFound,
		"entrepreneur not found",
		domainerror.ErrEntrepreneurNotFound,
	)
}

// findEntrepreneur loads an entrepreneur, mapping a miss to a typed error.
func findEntrepreneur(ctx context.Context, repo adapter.EntrepreneurRepository, id uuid.UUID) (*entity.Entrepreneur, error) {
	e, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntrepreneurNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find entrepreneur: %w", err)
	}
	return e, nil
}

func parseStartDate(value string) (time.Time, error) {
	date, err := entity.ParseLedgerDate(value)
	if err != nil {
		return time.Time{}, domainerror.NewEntrepreneurError(
			domainerror.ErrCodeInvalidStartDate,
			"start_date must be YYYY-MM-DD",
			domainerror.ErrInvalidStartDate,
		)
	}
	return date, nil
}
