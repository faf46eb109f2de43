// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EntrepreneurID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type                   string          `gorm:"type:varchar(10);not null;index"`
	Date                   time.Time       `gorm:"type:date;not null;index"`
	Amount                 decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod          string          `gorm:"type:varchar(20);not null"`
	PaidStatus             *string         `gorm:"type:varchar(10)"`
	CustomerName           string          `gorm:"type:varchar(255)"`
	ProductServiceCategory string          `gorm:"type:varchar(255)"`
	Notes                  string          `gorm:"type:text"`
	CreatedAt              time.Time       `gorm:"not null"`
	UpdatedAt              time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var paidStatus *entity.PaidStatus
	if m.PaidStatus != nil {
		status := entity.PaidStatus(*m.PaidStatus)
		paidStatus = &status
	}

	return &entity.Transaction{
		ID:                     m.ID,
		EntrepreneurID:         m.EntrepreneurID,
		Type:                   entity.TransactionType(m.Type),
		Date:                   entity.NormalizeDate(m.Date),
		Amount:                 m.Amount,
		PaymentMethod:          entity.PaymentMethod(m.PaymentMethod),
		PaidStatus:             paidStatus,
		CustomerName:           m.CustomerName,
		ProductServiceCategory: m.ProductServiceCategory,
		Notes:                  m.Notes,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	var paidStatus *string
	if status, ok := t.IncomePaidStatus(); ok {
		s := string(status)
		paidStatus = &s
	}

	return &TransactionModel{
		ID:                     t.ID,
		EntrepreneurID:         t.EntrepreneurID,
		Type:                   string(t.Type),
		Date:                   entity.NormalizeDate(t.Date),
		Amount:                 t.Amount,
		PaymentMethod:          string(t.PaymentMethod),
		PaidStatus:             paidStatus,
		CustomerName:           t.CustomerName,
		ProductServiceCategory: t.ProductServiceCategory,
		Notes:                  t.Notes,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}
