// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bizportal/backend/internal/application/usecase/entrepreneur"
	"github.com/bizportal/backend/internal/domain/entity"
)

// CreateEntrepreneurRequest represents the request body for entrepreneur creation.
type CreateEntrepreneurRequest struct {
	Name         string `json:"name" binding:"required"`
	BusinessName string `json:"business_name,omitempty"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	StartDate    string `json:"start_date" binding:"required"`
}

// UpdateEntrepreneurRequest represents the request body for entrepreneur update.
type UpdateEntrepreneurRequest struct {
	Name         *string `json:"name,omitempty"`
	BusinessName *string `json:"business_name,omitempty"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
}

// AddGoalRequest represents the request body for adding a goal.
type AddGoalRequest struct {
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type" binding:"required"`
	TargetValue string `json:"target_value,omitempty"`
	TargetDate  string `json:"target_date" binding:"required"`
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	TargetValue string    `json:"target_value"`
	TargetDate  string    `json:"target_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// GoalWithProgressResponse is a goal and its evaluated progress.
type GoalWithProgressResponse struct {
	GoalResponse
	Progress GoalProgressResponse `json:"progress"`
}

// EntrepreneurResponse represents an entrepreneur in API responses.
type EntrepreneurResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	BusinessName string         `json:"business_name,omitempty"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	StartDate    string         `json:"start_date"`
	Goals        []GoalResponse `json:"goals"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// EntrepreneurComparisonsResponse holds the per-entrepreneur comparisons.
type EntrepreneurComparisonsResponse struct {
	Income           ComparisonResponse `json:"income"`
	Expenses         ComparisonResponse `json:"expenses"`
	Net              ComparisonResponse `json:"net"`
	TransactionCount ComparisonResponse `json:"transaction_count"`
}

// EntrepreneurSummaryResponse represents the entrepreneur detail view.
type EntrepreneurSummaryResponse struct {
	Entrepreneur   EntrepreneurResponse             `json:"entrepreneur"`
	Range          RangeResponse                    `json:"range"`
	PreviousRange  *RangeResponse                   `json:"previous_range,omitempty"`
	Summary        SummaryResponse                  `json:"summary"`
	Comparisons    *EntrepreneurComparisonsResponse `json:"comparisons,omitempty"`
	Granularity    string                           `json:"granularity"`
	Chart          []ChartPointResponse             `json:"chart"`
	RecentActivity []ActivityResponse               `json:"recent_activity"`
	Goals          []GoalWithProgressResponse       `json:"goals"`
}

// DeleteEntrepreneurResponse reports the cascade of an entrepreneur deletion.
type DeleteEntrepreneurResponse struct {
	DeletedTransactions int `json:"deleted_transactions"`
}

// ToGoalResponse converts a Goal entity to GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Type:        string(g.Type),
		TargetValue: money(g.TargetValue),
		TargetDate:  date(g.TargetDate),
		CreatedAt:   g.CreatedAt,
	}
}

// ToGoalWithProgressResponses converts evaluated goals.
func ToGoalWithProgressResponses(goals []entrepreneur.GoalWithProgress) []GoalWithProgressResponse {
	result := make([]GoalWithProgressResponse, len(goals))
	for i := range goals {
		result[i] = GoalWithProgressResponse{
			GoalResponse: ToGoalResponse(&goals[i].Goal),
			Progress:     ToGoalProgressResponse(goals[i].Progress),
		}
	}
	return result
}

// ToEntrepreneurResponse converts an Entrepreneur entity to EntrepreneurResponse DTO.
func ToEntrepreneurResponse(e *entity.Entrepreneur) EntrepreneurResponse {
	goals := make([]GoalResponse, len(e.Goals))
	for i := range e.Goals {
		goals[i] = ToGoalResponse(&e.Goals[i])
	}
	return EntrepreneurResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		BusinessName: e.BusinessName,
		Email:        e.Email,
		Phone:        e.Phone,
		StartDate:    date(e.StartDate),
		Goals:        goals,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// ToEntrepreneurResponses converts a slice of entrepreneurs.
func ToEntrepreneurResponses(entrepreneurs []*entity.Entrepreneur) []EntrepreneurResponse {
	result := make([]EntrepreneurResponse, len(entrepreneurs))
	for i, e := range entrepreneurs {
		result[i] = ToEntrepreneurResponse(e)
	}
	return result
}

// ToEntrepreneurSummaryResponse converts a GetEntrepreneurSummaryOutput.
func ToEntrepreneurSummaryResponse(output *entrepreneur.GetEntrepreneurSummaryOutput) EntrepreneurSummaryResponse {
	resp := EntrepreneurSummaryResponse{
		Entrepreneur:   ToEntrepreneurResponse(output.Entrepreneur),
		Range:          ToRangeResponse(output.Range),
		PreviousRange:  ToRangeResponsePtr(output.PreviousRange),
		Summary:        ToSummaryResponse(output.Summary),
		Granularity:    string(output.Granularity),
		Chart:          ToChartResponse(output.Chart),
		RecentActivity: ToActivityResponses(output.RecentActivity),
		Goals:          ToGoalWithProgressResponses(output.Goals),
	}
	if c := output.Comparisons; c != nil {
		resp.Comparisons = &EntrepreneurComparisonsResponse{
			Income:           ToComparisonResponse(c.Income),
			Expenses:         ToComparisonResponse(c.Expenses),
			Net:              ToComparisonResponse(c.Net),
			TransactionCount: ToComparisonResponse(c.TransactionCount),
		}
	}
	return resp
}
