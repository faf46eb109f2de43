// Package report contains report drafting, archive and delivery use cases.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// EmailReportInput represents the input for e-mailing an archived report.
type EmailReportInput struct {
	ReportID       uuid.UUID
	RecipientEmail string // defaults to the entrepreneur's address
	SentBy         string
}

// EmailReportOutput reports where the e-mail was queued to.
type EmailReportOutput struct {
	RecipientEmail string
}

// EmailReportUseCase queues a report for e-mail delivery.
type EmailReportUseCase struct {
	reportRepo       adapter.ReportRepository
	entrepreneurRepo adapter.EntrepreneurRepository
	emailService     adapter.EmailService
}

// NewEmailReportUseCase creates a new EmailReportUseCase instance.
func NewEmailReportUseCase(
	reportRepo adapter.ReportRepository,
	entrepreneurRepo adapter.EntrepreneurRepository,
	emailService adapter.EmailService,
) *EmailReportUseCase {
	return &EmailReportUseCase{
		reportRepo:       reportRepo,
		entrepreneurRepo: entrepreneurRepo,
		emailService:     emailService,
	}
}

// Execute queues the delivery.
func (uc *EmailReportUseCase) Execute(ctx context.Context, input EmailReportInput) (*EmailReportOutput, error) {
	report, err := findReport(ctx, uc.reportRepo, input.ReportID)
	if err != nil {
		return nil, err
	}

	e, err := uc.entrepreneurRepo.FindByID(ctx, report.EntrepreneurID)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerror.NewEntrepreneurError(
				domainerror.ErrCodeEntrepreneurNotFound,
				"entrepreneur not found",
				domainerror.ErrEntrepreneurNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entrepreneur: %w", err)
	}

	recipient := strings.TrimSpace(input.RecipientEmail)
	if recipient == "" {
		recipient = e.Email
	}
	if recipient == "" {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"entrepreneur has no e-mail address",
			domainerror.ErrMissingRecipient,
		)
	}

	periodLabel := report.Period
	if period, err := analytics.ParseExplicitPeriod(report.Period); err == nil {
		periodLabel = period.Label()
	}

	metrics := make([]adapter.ReportMetricView, 0, len(report.Draft.Metrics))
	for _, m := range report.Draft.Metrics {
		metrics = append(metrics, adapter.ReportMetricView{Label: m.Label, Value: m.Value})
	}

	err = uc.emailService.QueueReportDelivery(ctx, adapter.QueueReportDeliveryInput{
		ReportID:         report.ID,
		RecipientEmail:   recipient,
		RecipientName:    e.Name,
		EntrepreneurName: e.DisplayName(),
		PeriodLabel:      periodLabel,
		Draft: adapter.ReportDraftView{
			Summary:         report.Draft.Summary,
			Highlights:      report.Draft.Highlights,
			Recommendations: report.Draft.Recommendations,
			Metrics:         metrics,
		},
		SentBy: input.SentBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue report e-mail: %w", err)
	}

	return &EmailReportOutput{RecipientEmail: recipient}, nil
}
