package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/domain/entity"
)

// EmailQueue persists outbound e-mails for the delivery worker.
// Due and PurgeClosed read the queue's clock, never the wall clock.
type EmailQueue interface {
	// Enqueue stores job. A report delivery that is still open for the same
	// report and recipient is returned instead of queueing a duplicate.
	Enqueue(ctx context.Context, job *entity.EmailJob) (*entity.EmailJob, error)

	// Due returns up to limit pending jobs whose scheduled time has come.
	Due(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	Save(ctx context.Context, job *entity.EmailJob) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// PurgeClosed deletes sent and failed jobs processed longer than retention ago.
	PurgeClosed(ctx context.Context, retention time.Duration) (int64, error)
}
