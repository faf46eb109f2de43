// Package report contains report drafting, archive and delivery use cases.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrEntrepreneurNotFound)
}

// ListReportsUseCase lists the archived reports of an entrepreneur.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{reportRepo: reportRepo}
}

// Execute returns the archive, newest first.
func (uc *ListReportsUseCase) Execute(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Report, error) {
	reports, err := uc.reportRepo.FindByEntrepreneur(ctx, entrepreneurID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// GetReportUseCase loads one archived report.
type GetReportUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewGetReportUseCase creates a new GetReportUseCase instance.
func NewGetReportUseCase(reportRepo adapter.ReportRepository) *GetReportUseCase {
	return &GetReportUseCase{reportRepo: reportRepo}
}

// Execute returns the report.
func (uc *GetReportUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	return findReport(ctx, uc.reportRepo, id)
}

func findReport(ctx context.Context, repo adapter.ReportRepository, id uuid.UUID) (*entity.Report, error) {
	report, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrReportNotFound) {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportNotFound,
				"report not found",
				domainerror.ErrReportNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}
	return report, nil
}
