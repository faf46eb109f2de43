// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report archive repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create archives a generated report.
func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	result := r.db.WithContext(ctx).Create(model.ReportFromEntity(report))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an archived report by its ID.
func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportModel model.ReportModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// FindByEntrepreneur returns the archived reports of one entrepreneur, newest first.
func (r *reportRepository) FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Report, error) {
	var reportModels []model.ReportModel
	result := r.db.WithContext(ctx).
		Where("entrepreneur_id = ?", entrepreneurID).
		Order("created_at DESC").
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.Report, len(reportModels))
	for i := range reportModels {
		reports[i] = reportModels[i].ToEntity()
	}
	return reports, nil
}
