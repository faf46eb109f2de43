// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
)

// ledgerSnapshot is one consistent read of the ledger collections.
type ledgerSnapshot struct {
	Transactions  []*entity.Transaction
	Entrepreneurs []*entity.Entrepreneur
}

func loadSnapshot(
	ctx context.Context,
	transactionRepo adapter.TransactionRepository,
	entrepreneurRepo adapter.EntrepreneurRepository,
) (*ledgerSnapshot, error) {
	transactions, err := transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	entrepreneurs, err := entrepreneurRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entrepreneurs: %w", err)
	}
	return &ledgerSnapshot{Transactions: transactions, Entrepreneurs: entrepreneurs}, nil
}
