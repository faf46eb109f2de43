// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

// EntrepreneurModel represents the entrepreneurs table in the database.
type EntrepreneurModel struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         string      `gorm:"type:varchar(255);not null"`
	BusinessName string      `gorm:"type:varchar(255)"`
	Email        string      `gorm:"type:varchar(255);index"`
	Phone        string      `gorm:"type:varchar(50)"`
	StartDate    time.Time   `gorm:"type:date;not null;index"`
	CreatedAt    time.Time   `gorm:"not null"`
	UpdatedAt    time.Time   `gorm:"not null"`
	Goals        []GoalModel `gorm:"foreignKey:EntrepreneurID;references:ID"`
}

// TableName returns the table name for the EntrepreneurModel.
func (EntrepreneurModel) TableName() string {
	return "entrepreneurs"
}

// GoalModel represents the goals table in the database.
// Position keeps the insertion order of an entrepreneur's goals.
type GoalModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EntrepreneurID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position       int             `gorm:"not null;default:0"`
	Title          string          `gorm:"type:varchar(255);not null"`
	Type           string          `gorm:"type:varchar(30);not null"`
	TargetValue    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate     time.Time       `gorm:"type:date;not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts an EntrepreneurModel with its preloaded goals to a domain entity.
func (m *EntrepreneurModel) ToEntity() *entity.Entrepreneur {
	goals := make([]entity.Goal, 0, len(m.Goals))
	for i := range m.Goals {
		goals = append(goals, *m.Goals[i].ToEntity())
	}

	return &entity.Entrepreneur{
		ID:           m.ID,
		Name:         m.Name,
		BusinessName: m.BusinessName,
		Email:        m.Email,
		Phone:        m.Phone,
		StartDate:    entity.NormalizeDate(m.StartDate),
		Goals:        goals,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// EntrepreneurFromEntity creates an EntrepreneurModel without goals.
func EntrepreneurFromEntity(e *entity.Entrepreneur) *EntrepreneurModel {
	return &EntrepreneurModel{
		ID:           e.ID,
		Name:         e.Name,
		BusinessName: e.BusinessName,
		Email:        e.Email,
		Phone:        e.Phone,
		StartDate:    entity.NormalizeDate(e.StartDate),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:             m.ID,
		EntrepreneurID: m.EntrepreneurID,
		Title:          m.Title,
		Type:           entity.GoalType(m.Type),
		TargetValue:    m.TargetValue,
		TargetDate:     entity.NormalizeDate(m.TargetDate),
		CreatedAt:      m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel at the given position.
func GoalFromEntity(g *entity.Goal, position int) *GoalModel {
	return &GoalModel{
		ID:             g.ID,
		EntrepreneurID: g.EntrepreneurID,
		Position:       position,
		Title:          g.Title,
		Type:           string(g.Type),
		TargetValue:    g.TargetValue,
		TargetDate:     entity.NormalizeDate(g.TargetDate),
		CreatedAt:      g.CreatedAt,
	}
}
