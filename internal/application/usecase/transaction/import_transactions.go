// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// ImportTransactionsInput represents a full replacement of the ledger.
type ImportTransactionsInput struct {
	Transactions []TransactionInput
}

// ImportTransactionsOutput represents the output of an import.
type ImportTransactionsOutput struct {
	ImportedCount int
}

// ImportTransactionsUseCase overwrites the transaction collection.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        adapter.ChangeNotifier
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(transactionRepo adapter.TransactionRepository, notifier adapter.ChangeNotifier) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute validates every entry, then replaces the collection. Nothing is
// written if any entry is invalid. Entries may reference entrepreneurs that
// do not exist.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	transactions := make([]*entity.Transaction, 0, len(input.Transactions))
	for i, in := range input.Transactions {
		tx, err := in.build()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		transactions = append(transactions, tx)
	}

	seen := make(map[string]struct{}, len(transactions))
	for i, tx := range transactions {
		key := tx.ID.String()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("transaction %d: %w", i, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionID,
				"duplicate id "+key,
				domainerror.ErrInvalidTransactionID,
			))
		}
		seen[key] = struct{}{}
	}

	if err := uc.transactionRepo.ReplaceAll(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to replace transactions: %w", err)
	}
	adapter.NotifyChanges(ctx, uc.notifier, adapter.CollectionTransactions)

	return &ImportTransactionsOutput{
		ImportedCount: len(transactions),
	}, nil
}
