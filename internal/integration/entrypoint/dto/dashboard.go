// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/bizportal/backend/internal/application/usecase/dashboard"
)

// DashboardComparisonsResponse holds the previous-period comparisons.
type DashboardComparisonsResponse struct {
	Income           ComparisonResponse `json:"income"`
	Expenses         ComparisonResponse `json:"expenses"`
	Net              ComparisonResponse `json:"net"`
	TransactionCount ComparisonResponse `json:"transaction_count"`
	NewEntrepreneurs ComparisonResponse `json:"new_entrepreneurs"`
}

// GoalAlertResponse is a goal that is due soon or overdue.
type GoalAlertResponse struct {
	EntrepreneurID   string               `json:"entrepreneur_id"`
	EntrepreneurName string               `json:"entrepreneur_name"`
	Goal             GoalResponse         `json:"goal"`
	Progress         GoalProgressResponse `json:"progress"`
}

// DashboardResponse represents the response of GET /dashboard.
type DashboardResponse struct {
	Range          RangeResponse                 `json:"range"`
	PreviousRange  *RangeResponse                `json:"previous_range,omitempty"`
	Summary        SummaryResponse               `json:"summary"`
	Comparisons    *DashboardComparisonsResponse `json:"comparisons,omitempty"`
	Granularity    string                        `json:"granularity"`
	Chart          []ChartPointResponse          `json:"chart"`
	RecentActivity []ActivityResponse            `json:"recent_activity"`
	GoalAlerts     []GoalAlertResponse           `json:"goal_alerts"`
}

// ChartResponse represents the response of GET /dashboard/chart.
type ChartResponse struct {
	Range         RangeResponse        `json:"range"`
	PreviousRange *RangeResponse       `json:"previous_range,omitempty"`
	Granularity   string               `json:"granularity"`
	Points        []ChartPointResponse `json:"points"`
}

// ToDashboardResponse converts a GetDashboardOutput to DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	resp := DashboardResponse{
		Range:          ToRangeResponse(output.Range),
		PreviousRange:  ToRangeResponsePtr(output.PreviousRange),
		Summary:        ToSummaryResponse(output.Summary),
		Granularity:    string(output.Granularity),
		Chart:          ToChartResponse(output.Chart),
		RecentActivity: ToActivityResponses(output.RecentActivity),
		GoalAlerts:     make([]GoalAlertResponse, len(output.GoalAlerts)),
	}
	if c := output.Comparisons; c != nil {
		resp.Comparisons = &DashboardComparisonsResponse{
			Income:           ToComparisonResponse(c.Income),
			Expenses:         ToComparisonResponse(c.Expenses),
			Net:              ToComparisonResponse(c.Net),
			TransactionCount: ToComparisonResponse(c.TransactionCount),
			NewEntrepreneurs: ToComparisonResponse(c.NewEntrepreneurs),
		}
	}
	for i, alert := range output.GoalAlerts {
		goal := alert.Goal
		resp.GoalAlerts[i] = GoalAlertResponse{
			EntrepreneurID:   alert.EntrepreneurID.String(),
			EntrepreneurName: alert.EntrepreneurName,
			Goal:             ToGoalResponse(&goal),
			Progress:         ToGoalProgressResponse(alert.Progress),
		}
	}
	return resp
}

// ToChartSeriesResponse converts a GetChartSeriesOutput to ChartResponse DTO.
func ToChartSeriesResponse(output *dashboard.GetChartSeriesOutput) ChartResponse {
	return ChartResponse{
		Range:         ToRangeResponse(output.Range),
		PreviousRange: ToRangeResponsePtr(output.PreviousRange),
		Granularity:   string(output.Granularity),
		Points:        ToChartResponse(output.Points),
	}
}
