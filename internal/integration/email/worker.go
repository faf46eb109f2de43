// Package email provides email queueing and delivery.
package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/email/templates"
)

// Worker drains the email queue.
type Worker struct {
	queue        adapter.EmailQueue
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	clock        adapter.Clock
	pollInterval time.Duration
	batchSize    int
	retention    time.Duration
}

// cleanupInterval is how often closed jobs past retention are purged.
const cleanupInterval = time.Hour

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Retention    time.Duration // how long sent and failed jobs are kept
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		Retention:    30 * 24 * time.Hour,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueue, sender adapter.EmailSender, renderer *templates.Renderer, clock adapter.Clock, config WorkerConfig) *Worker {
	if config.PollInterval <= 0 {
		config.PollInterval = DefaultWorkerConfig().PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultWorkerConfig().BatchSize
	}
	if config.Retention <= 0 {
		config.Retention = DefaultWorkerConfig().Retention
	}
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		clock:        clock,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
		retention:    config.Retention,
	}
}

// Start runs the poll loop until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	cleanup := time.NewTicker(cleanupInterval)
	defer cleanup.Stop()

	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		case <-cleanup.C:
			w.purgeClosed(ctx)
		}
	}
}

func (w *Worker) purgeClosed(ctx context.Context) {
	deleted, err := w.queue.PurgeClosed(ctx, w.retention)
	if err != nil {
		slog.Error("Failed to purge closed email jobs", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Purged closed email jobs", "count", deleted)
	}
}

// ProcessNow drains one batch synchronously.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}

func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.Due(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Save(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)

		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
		w.handleFailure(ctx, job, err, permanent)
		return
	}

	job.MarkSent(result.ProviderID, w.clock.Now())
	if err := w.queue.Save(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent", "provider_id", result.ProviderID)
}

func (w *Worker) renderTemplate(job *entity.EmailJob) (string, string, error) {
	var data interface{}

	switch job.TemplateType {
	case entity.TemplateReportDelivery:
		data = templates.ReportDeliveryData{
			RecipientName:    getString(job.TemplateData, keyRecipientName),
			EntrepreneurName: getString(job.TemplateData, keyEntrepreneurName),
			PeriodLabel:      getString(job.TemplateData, keyPeriodLabel),
			Summary:          getString(job.TemplateData, keySummary),
			Highlights:       getStrings(job.TemplateData, keyHighlights),
			Recommendations:  getStrings(job.TemplateData, keyRecommendations),
			Metrics:          getMetrics(job.TemplateData, keyMetrics),
			SentBy:           getString(job.TemplateData, keySentBy),
		}
	case entity.TemplateStaffWelcome:
		data = templates.StaffWelcomeData{
			UserName: getString(job.TemplateData, keyUserName),
			Role:     getString(job.TemplateData, keyRole),
			LoginURL: getString(job.TemplateData, keyLoginURL),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type: "+string(job.TemplateType),
			domainerror.ErrInvalidTemplate,
		)
	}

	return w.renderer.Render(string(job.TemplateType), data)
}

func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent, w.clock.Now())

	if updateErr := w.queue.Save(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}

	slog.Info("Email job scheduled for retry",
		"job_id", job.ID,
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}

// getStrings extracts a string list, whether it was stored in memory or decoded from JSON.
func getStrings(data map[string]interface{}, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func getMetrics(data map[string]interface{}, key string) []templates.Metric {
	items, ok := data[key].([]interface{})
	if !ok {
		return nil
	}

	metrics := make([]templates.Metric, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		metrics = append(metrics, templates.Metric{
			Label: getString(m, "label"),
			Value: getString(m, "value"),
		})
	}
	return metrics
}
