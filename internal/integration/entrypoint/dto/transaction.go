// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bizportal/backend/internal/application/usecase/transaction"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
)

// TransactionRequest represents the body of a transaction write. Amounts are
// decimal strings so that no precision is lost on the way in.
type TransactionRequest struct {
	ID                     string  `json:"id,omitempty"`
	EntrepreneurID         string  `json:"entrepreneur_id" binding:"required"`
	Type                   string  `json:"type" binding:"required"`
	Date                   string  `json:"date" binding:"required"`
	Amount                 string  `json:"amount" binding:"required"`
	PaymentMethod          string  `json:"payment_method,omitempty"`
	PaidStatus             *string `json:"paid_status,omitempty"`
	CustomerName           string  `json:"customer_name,omitempty"`
	ProductServiceCategory string  `json:"product_service_category,omitempty"`
	Notes                  string  `json:"notes,omitempty"`
}

// ToInput converts the request to the use case input.
func (r TransactionRequest) ToInput() transaction.TransactionInput {
	return transaction.TransactionInput{
		ID:                     r.ID,
		EntrepreneurID:         r.EntrepreneurID,
		Type:                   r.Type,
		Date:                   r.Date,
		Amount:                 r.Amount,
		PaymentMethod:          r.PaymentMethod,
		PaidStatus:             r.PaidStatus,
		CustomerName:           r.CustomerName,
		ProductServiceCategory: r.ProductServiceCategory,
		Notes:                  r.Notes,
	}
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                     string    `json:"id"`
	EntrepreneurID         string    `json:"entrepreneur_id"`
	Type                   string    `json:"type"`
	Date                   string    `json:"date"`
	Amount                 string    `json:"amount"`
	PaymentMethod          string    `json:"payment_method"`
	PaidStatus             *string   `json:"paid_status,omitempty"`
	CustomerName           string    `json:"customer_name,omitempty"`
	ProductServiceCategory string    `json:"product_service_category,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// TotalsResponse represents income, expense and net figures.
type TotalsResponse struct {
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	Net              string `json:"net"`
	IncomeCount      int    `json:"income_count"`
	ExpenseCount     int    `json:"expense_count"`
	TransactionCount int    `json:"transaction_count"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
	Totals       TotalsResponse        `json:"totals"`
}

// ImportTransactionsResponse represents the response of a collection overwrite.
type ImportTransactionsResponse struct {
	ImportedCount int `json:"imported_count"`
}

// ToTransactionResponse converts a Transaction entity to TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	var paidStatus *string
	if status, ok := tx.IncomePaidStatus(); ok {
		s := string(status)
		paidStatus = &s
	}
	return TransactionResponse{
		ID:                     tx.ID.String(),
		EntrepreneurID:         tx.EntrepreneurID.String(),
		Type:                   string(tx.Type),
		Date:                   tx.DateKey(),
		Amount:                 money(tx.Amount),
		PaymentMethod:          string(tx.PaymentMethod),
		PaidStatus:             paidStatus,
		CustomerName:           tx.CustomerName,
		ProductServiceCategory: tx.ProductServiceCategory,
		Notes:                  tx.Notes,
		CreatedAt:              tx.CreatedAt,
		UpdatedAt:              tx.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txs []*entity.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = ToTransactionResponse(tx)
	}
	return result
}

// ToTotalsResponse converts analytics totals.
func ToTotalsResponse(t analytics.Totals) TotalsResponse {
	return TotalsResponse{
		Income:           money(t.Income),
		Expenses:         money(t.Expenses),
		Net:              money(t.Net),
		IncomeCount:      t.IncomeCount,
		ExpenseCount:     t.ExpenseCount,
		TransactionCount: t.TransactionCount,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{
		Transactions: ToTransactionResponses(output.Transactions),
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Totals: ToTotalsResponse(output.Totals),
	}
}
