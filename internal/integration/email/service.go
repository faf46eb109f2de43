// Package email provides email queueing and delivery.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// Template data keys shared by the service and the worker.
const (
	keyRecipientName    = "recipient_name"
	keyEntrepreneurName = "entrepreneur_name"
	keyPeriodLabel      = "period_label"
	keySummary          = "summary"
	keyHighlights       = "highlights"
	keyRecommendations  = "recommendations"
	keyMetrics          = "metrics"
	keySentBy           = "sent_by"
	keyUserName         = "user_name"
	keyRole             = "role"
	keyLoginURL         = "login_url"
)

// Service queues outbound e-mails for the worker.
type Service struct {
	queue      adapter.EmailQueue
	clock      adapter.Clock
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueue, clock adapter.Clock, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		clock:      clock,
		appBaseURL: appBaseURL,
	}
}

// QueueReportDelivery queues a drafted report for delivery to an entrepreneur.
// Asking again while the same delivery is still open queues nothing new.
func (s *Service) QueueReportDelivery(ctx context.Context, input adapter.QueueReportDeliveryInput) error {
	if input.RecipientEmail == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"entrepreneur has no e-mail address",
			domainerror.ErrMissingRecipient,
		)
	}

	metrics := make([]interface{}, 0, len(input.Draft.Metrics))
	for _, m := range input.Draft.Metrics {
		metrics = append(metrics, map[string]interface{}{"label": m.Label, "value": m.Value})
	}

	templateData := map[string]interface{}{
		keyRecipientName:    input.RecipientName,
		keyEntrepreneurName: input.EntrepreneurName,
		keyPeriodLabel:      input.PeriodLabel,
		keySummary:          input.Draft.Summary,
		keyHighlights:       toInterfaces(input.Draft.Highlights),
		keyRecommendations:  toInterfaces(input.Draft.Recommendations),
		keyMetrics:          metrics,
		keySentBy:           input.SentBy,
	}

	job := entity.NewEmailJob(
		entity.TemplateReportDelivery,
		input.RecipientEmail,
		input.RecipientName,
		fmt.Sprintf("%s report for %s", input.PeriodLabel, input.EntrepreneurName),
		templateData,
		s.clock.Now(),
	)
	if input.ReportID != uuid.Nil {
		reportID := input.ReportID
		job.ReportID = &reportID
	}

	stored, err := s.queue.Enqueue(ctx, job)
	if err != nil {
		return err
	}
	if stored.ID != job.ID {
		slog.Info("Report delivery already queued",
			"report_id", input.ReportID,
			"job_id", stored.ID,
		)
	}

	return nil
}

// QueueStaffWelcome queues the welcome e-mail of a new staff account.
func (s *Service) QueueStaffWelcome(ctx context.Context, input adapter.QueueStaffWelcomeInput) error {
	loginURL := input.LoginURL
	if loginURL == "" {
		loginURL = s.appBaseURL + "/login"
	}

	job := entity.NewEmailJob(
		entity.TemplateStaffWelcome,
		input.UserEmail,
		input.UserName,
		"Welcome to the Business Portal",
		map[string]interface{}{
			keyUserName: input.UserName,
			keyRole:     input.Role,
			keyLoginURL: loginURL,
		},
		s.clock.Now(),
	)

	_, err := s.queue.Enqueue(ctx, job)
	return err
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
