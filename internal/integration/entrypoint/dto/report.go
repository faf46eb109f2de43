// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bizportal/backend/internal/application/usecase/report"
	"github.com/bizportal/backend/internal/domain/entity"
)

// GenerateReportRequest represents the request body for drafting a report.
type GenerateReportRequest struct {
	EntrepreneurID string `json:"entrepreneur_id" binding:"required"`
	Period         string `json:"period" binding:"required"`
}

// EmailReportRequest represents the optional body of a report e-mail request.
type EmailReportRequest struct {
	RecipientEmail string `json:"recipient_email,omitempty" binding:"omitempty,email"`
}

// ReportResponse represents an archived report.
type ReportResponse struct {
	ID             string             `json:"id"`
	EntrepreneurID string             `json:"entrepreneur_id"`
	Period         string             `json:"period"`
	Draft          entity.ReportDraft `json:"draft"`
	GeneratedBy    string             `json:"generated_by"`
	CreatedAt      time.Time          `json:"created_at"`
	Summary        *SummaryResponse   `json:"summary,omitempty"`
	Cached         bool               `json:"cached,omitempty"`
	PeriodLabel    string             `json:"period_label,omitempty"`
}

// ReportListResponse represents the archive of an entrepreneur.
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// EmailReportResponse confirms a queued report e-mail.
type EmailReportResponse struct {
	Message        string `json:"message"`
	RecipientEmail string `json:"recipient_email"`
}

// ToReportResponse converts a Report entity to ReportResponse DTO.
func ToReportResponse(r *entity.Report) ReportResponse {
	draft := r.Draft
	if draft.Highlights == nil {
		draft.Highlights = []string{}
	}
	if draft.Recommendations == nil {
		draft.Recommendations = []string{}
	}
	if draft.Metrics == nil {
		draft.Metrics = []entity.ReportMetric{}
	}
	if draft.Tables == nil {
		draft.Tables = []entity.ReportTable{}
	}
	return ReportResponse{
		ID:             r.ID.String(),
		EntrepreneurID: r.EntrepreneurID.String(),
		Period:         r.Period,
		Draft:          draft,
		GeneratedBy:    r.GeneratedBy.String(),
		CreatedAt:      r.CreatedAt,
	}
}

// ToGeneratedReportResponse converts a GenerateReportOutput.
func ToGeneratedReportResponse(output *report.GenerateReportOutput) ReportResponse {
	resp := ToReportResponse(output.Report)
	summary := ToSummaryResponse(output.Summary)
	resp.Summary = &summary
	resp.Cached = output.Cached
	resp.PeriodLabel = output.PeriodLabel
	return resp
}

// ToReportListResponse converts a list of reports.
func ToReportListResponse(reports []*entity.Report) ReportListResponse {
	result := make([]ReportResponse, len(reports))
	for i, r := range reports {
		result[i] = ToReportResponse(r)
	}
	return ReportListResponse{Reports: result}
}
