// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportMetric is a named figure highlighted in a drafted report.
type ReportMetric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReportTable is a small tabular section of a drafted report.
type ReportTable struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ReportDraft is the structured output of the report-drafting service.
type ReportDraft struct {
	Summary         string         `json:"summary"`
	Highlights      []string       `json:"highlights"`
	Recommendations []string       `json:"recommendations"`
	Metrics         []ReportMetric `json:"metrics"`
	Tables          []ReportTable  `json:"tables"`
}

// Report is an archived, drafted report for one entrepreneur and one explicit period.
type Report struct {
	ID             uuid.UUID
	EntrepreneurID uuid.UUID
	Period         string // YYYY or YYYY-MM
	Draft          ReportDraft
	GeneratedBy    uuid.UUID
	CreatedAt      time.Time
}

// NewReport creates a new Report entity.
func NewReport(entrepreneurID uuid.UUID, period string, draft ReportDraft, generatedBy uuid.UUID) *Report {
	return &Report{
		ID:             uuid.New(),
		EntrepreneurID: entrepreneurID,
		Period:         period,
		Draft:          draft,
		GeneratedBy:    generatedBy,
		CreatedAt:      time.Now().UTC(),
	}
}
