// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/bizportal/backend/internal/domain/entity"
)

// ReportModel represents the reports archive table in the database.
// Metrics and tables are stored as JSON text.
type ReportModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EntrepreneurID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Period          string         `gorm:"type:varchar(7);not null"`
	Summary         string         `gorm:"type:text;not null"`
	Highlights      pq.StringArray `gorm:"type:text[]"`
	Recommendations pq.StringArray `gorm:"type:text[]"`
	Metrics         string         `gorm:"type:text"`
	Tables          string         `gorm:"type:text"`
	GeneratedBy     uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain Report entity.
func (m *ReportModel) ToEntity() *entity.Report {
	draft := entity.ReportDraft{
		Summary:         m.Summary,
		Highlights:      nonNil(m.Highlights),
		Recommendations: nonNil(m.Recommendations),
		Metrics:         []entity.ReportMetric{},
		Tables:          []entity.ReportTable{},
	}
	if m.Metrics != "" {
		if err := json.Unmarshal([]byte(m.Metrics), &draft.Metrics); err != nil {
			slog.Warn("Failed to unmarshal report metrics", "error", err, "id", m.ID)
		}
	}
	if m.Tables != "" {
		if err := json.Unmarshal([]byte(m.Tables), &draft.Tables); err != nil {
			slog.Warn("Failed to unmarshal report tables", "error", err, "id", m.ID)
		}
	}

	return &entity.Report{
		ID:             m.ID,
		EntrepreneurID: m.EntrepreneurID,
		Period:         m.Period,
		Draft:          draft,
		GeneratedBy:    m.GeneratedBy,
		CreatedAt:      m.CreatedAt,
	}
}

// ReportFromEntity creates a ReportModel from a domain Report entity.
func ReportFromEntity(r *entity.Report) *ReportModel {
	metrics, err := json.Marshal(r.Draft.Metrics)
	if err != nil {
		slog.Error("Failed to marshal report metrics", "error", err, "id", r.ID)
		metrics = []byte("[]")
	}
	tables, err := json.Marshal(r.Draft.Tables)
	if err != nil {
		slog.Error("Failed to marshal report tables", "error", err, "id", r.ID)
		tables = []byte("[]")
	}

	return &ReportModel{
		ID:              r.ID,
		EntrepreneurID:  r.EntrepreneurID,
		Period:          r.Period,
		Summary:         r.Draft.Summary,
		Highlights:      pq.StringArray(r.Draft.Highlights),
		Recommendations: pq.StringArray(r.Draft.Recommendations),
		Metrics:         string(metrics),
		Tables:          string(tables),
		GeneratedBy:     r.GeneratedBy,
		CreatedAt:       r.CreatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
