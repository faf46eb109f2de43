// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
)

// ReportDraftRequest is the input of the report-drafting service.
type ReportDraftRequest struct {
	Entrepreneur *entity.Entrepreneur
	Period       string // YYYY or YYYY-MM
	PeriodLabel  string
	Transactions []*entity.Transaction
	Summary      analytics.Summary
}

// ReportDrafter drafts a narrative report from a period slice of the ledger.
// Failures are returned classified as *domainerror.ReportError and must not be retried.
type ReportDrafter interface {
	Draft(ctx context.Context, request *ReportDraftRequest) (*entity.ReportDraft, error)

	// IsAvailable reports whether the service has credentials configured.
	IsAvailable() bool
}

// ReportCache stores drafts keyed by the ledger slice they were drafted from.
type ReportCache interface {
	// Get returns the cached draft; the bool is false on a miss.
	Get(ctx context.Context, key string) (*entity.ReportDraft, bool, error)

	// Set stores a draft for ttl.
	Set(ctx context.Context, key string, draft *entity.ReportDraft, ttl time.Duration) error
}

// ReportRepository defines the interface for the report archive.
type ReportRepository interface {
	// Create archives a drafted report.
	Create(ctx context.Context, report *entity.Report) error

	// FindByID retrieves an archived report.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// FindByEntrepreneur lists archived reports of an entrepreneur, newest first.
	FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Report, error)
}
