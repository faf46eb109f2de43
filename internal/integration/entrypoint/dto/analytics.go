// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bizportal/backend/internal/domain/analytics"
)

// RangeResponse describes a resolved date range.
type RangeResponse struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ComparisonResponse is a figure next to its previous-period value.
type ComparisonResponse struct {
	Current       string  `json:"current"`
	Previous      string  `json:"previous"`
	PercentChange float64 `json:"percent_change"`
	Direction     string  `json:"direction"`
}

// CategoryShareResponse is one slice of a category breakdown.
type CategoryShareResponse struct {
	Category         string  `json:"category"`
	Amount           string  `json:"amount"`
	TransactionCount int     `json:"transaction_count"`
	Percentage       float64 `json:"percentage"`
}

// CustomerRankResponse is one row of the top customers list.
type CustomerRankResponse struct {
	Name             string `json:"name"`
	Amount           string `json:"amount"`
	TransactionCount int    `json:"transaction_count"`
	LastPurchaseDate string `json:"last_purchase_date"`
}

// ProductRankResponse is one row of the top products list.
type ProductRankResponse struct {
	Category         string `json:"category"`
	Amount           string `json:"amount"`
	TransactionCount int    `json:"transaction_count"`
}

// EntrepreneurRankResponse is one row of the top entrepreneurs list.
type EntrepreneurRankResponse struct {
	EntrepreneurID   string `json:"entrepreneur_id"`
	Name             string `json:"name"`
	Amount           string `json:"amount"`
	TransactionCount int    `json:"transaction_count"`
}

// SummaryResponse is the derived view of a period.
type SummaryResponse struct {
	TotalsResponse
	TotalBilled             string                     `json:"total_billed"`
	Outstanding             string                     `json:"outstanding"`
	OutstandingCount        int                        `json:"outstanding_count"`
	CollectionRate          float64                    `json:"collection_rate"`
	FullPaymentRate         float64                    `json:"full_payment_rate"`
	NewEntrepreneurs        int                        `json:"new_entrepreneurs"`
	AverageTransactionValue string                     `json:"average_transaction_value"`
	ProfitMargin            float64                    `json:"profit_margin"`
	IncomeByCategory        []CategoryShareResponse    `json:"income_by_category"`
	ExpenseByCategory       []CategoryShareResponse    `json:"expense_by_category"`
	TopCustomers            []CustomerRankResponse     `json:"top_customers"`
	TopProducts             []ProductRankResponse      `json:"top_products"`
	TopEntrepreneurs        []EntrepreneurRankResponse `json:"top_entrepreneurs"`
}

// BucketResponse is one chart bucket.
type BucketResponse struct {
	Key              string `json:"key"`
	Label            string `json:"label"`
	Income           string `json:"income"`
	Expense          string `json:"expense"`
	Net              string `json:"net"`
	TransactionCount int    `json:"transaction_count"`
}

// ChartPointResponse pairs a bucket with its previous-period counterpart.
type ChartPointResponse struct {
	Current  BucketResponse  `json:"current"`
	Previous *BucketResponse `json:"previous,omitempty"`
}

// ActivityResponse is one entry of the recent activity feed.
type ActivityResponse struct {
	Kind             string    `json:"kind"`
	Date             time.Time `json:"date"`
	EntrepreneurID   string    `json:"entrepreneur_id"`
	EntrepreneurName string    `json:"entrepreneur_name"`
	Description      string    `json:"description"`
	Amount           *string   `json:"amount,omitempty"`
	TransactionType  string    `json:"transaction_type,omitempty"`
}

// GoalProgressResponse is the evaluated progress of one goal.
type GoalProgressResponse struct {
	Period        string  `json:"period"`
	CurrentValue  string  `json:"current_value"`
	TargetValue   string  `json:"target_value"`
	Percent       float64 `json:"percent"`
	Status        string  `json:"status"`
	DaysRemaining int     `json:"days_remaining"`
	IsMilestone   bool    `json:"is_milestone"`
}

// ToRangeResponse converts a resolved range.
func ToRangeResponse(r analytics.Range) RangeResponse {
	return RangeResponse{
		Key:       string(r.Key),
		Label:     r.Label(),
		StartDate: date(r.Start),
		EndDate:   date(r.End),
	}
}

// ToRangeResponsePtr converts an optional range.
func ToRangeResponsePtr(r *analytics.Range) *RangeResponse {
	if r == nil {
		return nil
	}
	resp := ToRangeResponse(*r)
	return &resp
}

// ToComparisonResponse converts a comparison.
func ToComparisonResponse(c analytics.Comparison) ComparisonResponse {
	return ComparisonResponse{
		Current:       c.Current.String(),
		Previous:      c.Previous.String(),
		PercentChange: c.PercentChange,
		Direction:     string(c.Direction),
	}
}

// ToSummaryResponse converts an aggregated summary.
func ToSummaryResponse(s analytics.Summary) SummaryResponse {
	resp := SummaryResponse{
		TotalsResponse:          ToTotalsResponse(s.Totals),
		TotalBilled:             money(s.TotalBilled),
		Outstanding:             money(s.Outstanding),
		OutstandingCount:        s.OutstandingCount,
		CollectionRate:          s.CollectionRate,
		FullPaymentRate:         s.FullPaymentRate,
		NewEntrepreneurs:        s.NewEntrepreneurs,
		AverageTransactionValue: money(s.AverageTransactionValue),
		ProfitMargin:            s.ProfitMargin,
		IncomeByCategory:        toCategoryShares(s.IncomeByCategory),
		ExpenseByCategory:       toCategoryShares(s.ExpenseByCategory),
		TopCustomers:            make([]CustomerRankResponse, len(s.TopCustomers)),
		TopProducts:             make([]ProductRankResponse, len(s.TopProducts)),
		TopEntrepreneurs:        make([]EntrepreneurRankResponse, len(s.TopEntrepreneurs)),
	}
	for i, c := range s.TopCustomers {
		resp.TopCustomers[i] = CustomerRankResponse{
			Name:             c.Name,
			Amount:           money(c.Amount),
			TransactionCount: c.TransactionCount,
			LastPurchaseDate: date(c.LastPurchaseDate),
		}
	}
	for i, p := range s.TopProducts {
		resp.TopProducts[i] = ProductRankResponse{
			Category:         p.Category,
			Amount:           money(p.Amount),
			TransactionCount: p.TransactionCount,
		}
	}
	for i, e := range s.TopEntrepreneurs {
		resp.TopEntrepreneurs[i] = EntrepreneurRankResponse{
			EntrepreneurID:   e.EntrepreneurID.String(),
			Name:             e.Name,
			Amount:           money(e.Amount),
			TransactionCount: e.TransactionCount,
		}
	}
	return resp
}

func toCategoryShares(shares []analytics.CategoryShare) []CategoryShareResponse {
	result := make([]CategoryShareResponse, len(shares))
	for i, s := range shares {
		result[i] = CategoryShareResponse{
			Category:         s.Category,
			Amount:           money(s.Amount),
			TransactionCount: s.TransactionCount,
			Percentage:       s.Percentage,
		}
	}
	return result
}

func toBucketResponse(b analytics.Bucket) BucketResponse {
	return BucketResponse{
		Key:              b.Key,
		Label:            b.Label,
		Income:           money(b.Income),
		Expense:          money(b.Expense),
		Net:              money(b.Net),
		TransactionCount: b.TransactionCount,
	}
}

// ToChartResponse converts a chart series.
func ToChartResponse(points []analytics.ComparisonPoint) []ChartPointResponse {
	result := make([]ChartPointResponse, len(points))
	for i, p := range points {
		result[i] = ChartPointResponse{Current: toBucketResponse(p.Current)}
		if p.Previous != nil {
			prev := toBucketResponse(*p.Previous)
			result[i].Previous = &prev
		}
	}
	return result
}

// ToActivityResponses converts the recent activity feed.
func ToActivityResponses(events []analytics.ActivityEvent) []ActivityResponse {
	result := make([]ActivityResponse, len(events))
	for i, e := range events {
		result[i] = ActivityResponse{
			Kind:             string(e.Kind),
			Date:             e.Date,
			EntrepreneurID:   e.EntrepreneurID.String(),
			EntrepreneurName: e.EntrepreneurName,
			Description:      e.Description,
			Amount:           moneyPtr(e.Amount),
			TransactionType:  string(e.TransactionType),
		}
	}
	return result
}

// ToGoalProgressResponse converts an evaluated goal.
func ToGoalProgressResponse(p analytics.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		Period:        p.Period.Prefix,
		CurrentValue:  money(p.CurrentValue),
		TargetValue:   money(p.TargetValue),
		Percent:       p.Percent,
		Status:        string(p.Status),
		DaysRemaining: p.DaysRemaining,
		IsMilestone:   p.IsMilestone,
	}
}
