// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// CreateTransactionOutput represents the output of recording a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase records one income or expense entry.
type CreateTransactionUseCase struct {
	transactionRepo  adapter.TransactionRepository
	entrepreneurRepo adapter.EntrepreneurRepository
	notifier         adapter.ChangeNotifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	entrepreneurRepo adapter.EntrepreneurRepository,
	notifier adapter.ChangeNotifier,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:  transactionRepo,
		entrepreneurRepo: entrepreneurRepo,
		notifier:         notifier,
	}
}

// Execute validates and stores the transaction. The referenced entrepreneur
// must exist at recording time.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input TransactionInput) (*CreateTransactionOutput, error) {
	input.ID = ""
	tx, err := input.build()
	if err != nil {
		return nil, err
	}

	if _, err := uc.entrepreneurRepo.FindByID(ctx, tx.EntrepreneurID); err != nil {
		if errors.Is(err, domainerror.ErrEntrepreneurNotFound) {
			return nil, domainerror.NewEntrepreneurError(
				domainerror.ErrCodeEntrepreneurNotFound,
				"entrepreneur not found",
				domainerror.ErrEntrepreneurNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entrepreneur: %w", err)
	}

	if err := uc.transactionRepo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	adapter.NotifyChanges(ctx, uc.notifier, adapter.CollectionTransactions)

	return &CreateTransactionOutput{
		Transaction: tx,
	}, nil
}
