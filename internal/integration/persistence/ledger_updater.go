// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/integration/persistence/model"
)

// ledgerUpdater implements the adapter.LedgerUpdater interface.
type ledgerUpdater struct {
	db *gorm.DB
}

// NewLedgerUpdater creates a new ledger updater instance.
func NewLedgerUpdater(db *gorm.DB) adapter.LedgerUpdater {
	return &ledgerUpdater{
		db: db,
	}
}

// ApplyUpdate applies every path of the update or none of them.
// Deletes run before puts so an update can move a record.
func (u *ledgerUpdater) ApplyUpdate(ctx context.Context, update adapter.LedgerUpdate) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(update.DeleteTransactionIDs) > 0 {
			if err := tx.Where("id IN ?", update.DeleteTransactionIDs).
				Delete(&model.TransactionModel{}).Error; err != nil {
				return err
			}
		}
		if len(update.DeleteGoalIDs) > 0 {
			if err := tx.Where("id IN ?", update.DeleteGoalIDs).
				Delete(&model.GoalModel{}).Error; err != nil {
				return err
			}
		}
		if err := deleteEntrepreneurs(tx, update.DeleteEntrepreneurIDs, false); err != nil {
			return err
		}
		if err := saveEntrepreneurs(tx, update.PutEntrepreneurs); err != nil {
			return err
		}
		for _, goal := range update.PutGoals {
			if err := saveGoal(tx, goal); err != nil {
				return err
			}
		}
		return saveTransactions(tx, update.PutTransactions)
	})
}
