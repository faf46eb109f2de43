// Package entrepreneur contains entrepreneur and goal use cases.
package entrepreneur

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
)

// DeleteEntrepreneurInput represents the input for removing an entrepreneur.
type DeleteEntrepreneurInput struct {
	ID uuid.UUID
}

// DeleteEntrepreneurOutput reports what the removal touched.
type DeleteEntrepreneurOutput struct {
	DeletedTransactions int
}

// DeleteEntrepreneurUseCase removes an entrepreneur with its goals and
// transactions in one atomic ledger update.
type DeleteEntrepreneurUseCase struct {
	entrepreneurRepo adapter.EntrepreneurRepository
	transactionRepo  adapter.TransactionRepository
	updater          adapter.LedgerUpdater
	notifier         adapter.ChangeNotifier
}

// NewDeleteEntrepreneurUseCase creates a new DeleteEntrepreneurUseCase instance.
func NewDeleteEntrepreneurUseCase(
	entrepreneurRepo adapter.EntrepreneurRepository,
	transactionRepo adapter.TransactionRepository,
	updater adapter.LedgerUpdater,
	notifier adapter.ChangeNotifier,
) *DeleteEntrepreneurUseCase {
	return &DeleteEntrepreneurUseCase{
		entrepreneurRepo: entrepreneurRepo,
		transactionRepo:  transactionRepo,
		updater:          updater,
		notifier:         notifier,
	}
}

// Execute performs the removal.
func (uc *DeleteEntrepreneurUseCase) Execute(ctx context.Context, input DeleteEntrepreneurInput) (*DeleteEntrepreneurOutput, error) {
	e, err := findEntrepreneur(ctx, uc.entrepreneurRepo, input.ID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByEntrepreneur(ctx, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	update := adapter.LedgerUpdate{
		DeleteEntrepreneurIDs: []uuid.UUID{e.ID},
		DeleteTransactionIDs:  make([]uuid.UUID, 0, len(transactions)),
	}
	for _, tx := range transactions {
		update.DeleteTransactionIDs = append(update.DeleteTransactionIDs, tx.ID)
	}

	if err := uc.updater.ApplyUpdate(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to delete entrepreneur: %w", err)
	}
	adapter.NotifyChanges(ctx, uc.notifier, update.Collections()...)

	return &DeleteEntrepreneurOutput{
		DeletedTransactions: len(transactions),
	}, nil
}
