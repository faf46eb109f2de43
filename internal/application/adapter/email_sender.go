// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueReportDelivery queues an archived report for delivery.
	QueueReportDelivery(ctx context.Context, input QueueReportDeliveryInput) error

	// QueueStaffWelcome queues the welcome e-mail of a new staff account.
	QueueStaffWelcome(ctx context.Context, input QueueStaffWelcomeInput) error
}

// QueueReportDeliveryInput represents the input for queueing a report e-mail.
type QueueReportDeliveryInput struct {
	ReportID         uuid.UUID
	RecipientEmail   string
	RecipientName    string
	EntrepreneurName string
	PeriodLabel      string
	Draft            ReportDraftView
	SentBy           string
}

// ReportDraftView is the template-ready form of a report draft.
type ReportDraftView struct {
	Summary         string
	Highlights      []string
	Recommendations []string
	Metrics         []ReportMetricView
}

// ReportMetricView is one metric line of a report e-mail.
type ReportMetricView struct {
	Label string
	Value string
}

// QueueStaffWelcomeInput represents the input for queueing a welcome e-mail.
type QueueStaffWelcomeInput struct {
	UserEmail string
	UserName  string
	Role      string
	LoginURL  string
}
