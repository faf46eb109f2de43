// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// UnknownEntrepreneurName is displayed for transactions whose entrepreneur no longer exists.
const UnknownEntrepreneurName = "Unknown"

// Entrepreneur is a small-business owner whose ledger is tracked by the portal.
type Entrepreneur struct {
	ID           uuid.UUID
	Name         string
	BusinessName string
	Email        string
	Phone        string
	StartDate    time.Time
	Goals        []Goal // insertion order
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewEntrepreneur creates a new Entrepreneur entity.
func NewEntrepreneur(name, businessName, email, phone string, startDate time.Time) *Entrepreneur {
	now := time.Now().UTC()

	return &Entrepreneur{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(name),
		BusinessName: strings.TrimSpace(businessName),
		Email:        strings.TrimSpace(strings.ToLower(email)),
		Phone:        strings.TrimSpace(phone),
		StartDate:    NormalizeDate(startDate),
		Goals:        []Goal{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DisplayName returns the business name when present, otherwise the owner's name.
func (e *Entrepreneur) DisplayName() string {
	if e.BusinessName != "" {
		return e.BusinessName
	}
	return e.Name
}

// FindGoal returns the goal with the given ID.
func (e *Entrepreneur) FindGoal(id uuid.UUID) (*Goal, bool) {
	for i := range e.Goals {
		if e.Goals[i].ID == id {
			return &e.Goals[i], true
		}
	}
	return nil, false
}

// Validate checks entrepreneur invariants.
func (e *Entrepreneur) Validate() error {
	if e.Name == "" {
		return domainerror.NewEntrepreneurError(
			domainerror.ErrCodeMissingEntrepreneurName,
			"name is required",
			domainerror.ErrMissingEntrepreneurName,
		)
	}
	if e.StartDate.IsZero() {
		return domainerror.NewEntrepreneurError(
			domainerror.ErrCodeInvalidStartDate,
			"start_date is required",
			domainerror.ErrInvalidStartDate,
		)
	}
	return nil
}

// EntrepreneurNames indexes entrepreneurs by ID for display lookups.
func EntrepreneurNames(entrepreneurs []*Entrepreneur) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(entrepreneurs))
	for _, e := range entrepreneurs {
		names[e.ID] = e.DisplayName()
	}
	return names
}
