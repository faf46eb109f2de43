// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/analytics"
	"github.com/bizportal/backend/internal/domain/entity"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	EntrepreneurID *uuid.UUID
	Period         string // optional YYYY or YYYY-MM
	Type           *entity.TransactionType
	Page           int
	Limit          int
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// ListTransactionsOutput represents the output of listing transactions.
// Totals cover every matching transaction, not only the page.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Pagination   PaginationOutput
	Totals       analytics.Totals
}

// ListTransactionsUseCase handles listing transactions, newest first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	var period *analytics.ExplicitPeriod
	if input.Period != "" {
		p, err := analytics.ParseExplicitPeriod(input.Period)
		if err != nil {
			return nil, err
		}
		period = &p
	}

	var (
		transactions []*entity.Transaction
		err          error
	)
	if input.EntrepreneurID != nil {
		transactions, err = uc.transactionRepo.FindByEntrepreneur(ctx, *input.EntrepreneurID)
	} else {
		transactions, err = uc.transactionRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if period != nil {
		transactions = analytics.FilterTransactions(transactions, period)
	}
	if input.Type != nil {
		filtered := make([]*entity.Transaction, 0, len(transactions))
		for _, tx := range transactions {
			if tx.Type == *input.Type {
				filtered = append(filtered, tx)
			}
		}
		transactions = filtered
	}

	newestFirst := make([]*entity.Transaction, len(transactions))
	for i, tx := range transactions {
		newestFirst[len(transactions)-1-i] = tx
	}

	total := len(newestFirst)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ListTransactionsOutput{
		Transactions: newestFirst[start:end],
		Pagination: PaginationOutput{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
		Totals: analytics.ComputeTotals(newestFirst),
	}, nil
}
