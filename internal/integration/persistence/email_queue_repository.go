// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/persistence/model"
)

var (
	openStatuses   = []entity.EmailStatus{entity.EmailStatusPending, entity.EmailStatusProcessing}
	closedStatuses = []entity.EmailStatus{entity.EmailStatusSent, entity.EmailStatusFailed}
)

// emailQueueRepository implements adapter.EmailQueue on the email_queue table.
type emailQueueRepository struct {
	db    *gorm.DB
	clock adapter.Clock
}

// NewEmailQueueRepository creates the delivery queue. Due jobs and retention
// are measured against clock.
func NewEmailQueueRepository(db *gorm.DB, clock adapter.Clock) adapter.EmailQueue {
	return &emailQueueRepository{
		db:    db,
		clock: clock,
	}
}

// Enqueue stores job, collapsing repeated deliveries of one report to one recipient.
func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) (*entity.EmailJob, error) {
	stored := job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if job.ReportID != nil {
			var open model.EmailQueueModel
			result := tx.
				Where("report_id = ? AND recipient_email = ?", *job.ReportID, job.RecipientEmail).
				Where("status IN ?", openStatuses).
				Order("created_at ASC").
				Limit(1).
				Find(&open)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected > 0 {
				stored = open.ToEntity()
				return nil
			}
		}
		return tx.Create(model.EmailQueueModelFromEntity(job)).Error
	})
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue email job",
			err,
		)
	}
	return stored, nil
}

// Due returns pending jobs scheduled at or before the queue clock, oldest first.
func (r *emailQueueRepository) Due(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", entity.EmailStatusPending, r.clock.Now().UTC()).
		Order("scheduled_at ASC").
		Order("created_at ASC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.EmailJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}
	return jobs, nil
}

// Save writes the job's delivery state.
func (r *emailQueueRepository) Save(ctx context.Context, job *entity.EmailJob) error {
	return r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error
}

// FindByID retrieves a job by its ID.
func (r *emailQueueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	var jobModel model.EmailQueueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmailJobNotFound
		}
		return nil, result.Error
	}
	return jobModel.ToEntity(), nil
}

// PurgeClosed removes sent and failed jobs past retention.
func (r *emailQueueRepository) PurgeClosed(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := r.clock.Now().UTC().Add(-retention)

	result := r.db.WithContext(ctx).
		Where("status IN ? AND processed_at < ?", closedStatuses, cutoff).
		Delete(&model.EmailQueueModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
