// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/domain/entity"
)

// LedgerCollection names a live collection of the ledger store.
type LedgerCollection string

const (
	CollectionTransactions  LedgerCollection = "transactions"
	CollectionEntrepreneurs LedgerCollection = "entrepreneurs"
	CollectionUsers         LedgerCollection = "users"
)

// IsValidLedgerCollection validates a collection name.
func IsValidLedgerCollection(c LedgerCollection) bool {
	return c == CollectionTransactions || c == CollectionEntrepreneurs || c == CollectionUsers
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Save writes one transaction by ID, inserting or replacing it.
	Save(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes one transaction by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll returns the whole collection ordered by date, then creation time.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByEntrepreneur returns the transactions of one entrepreneur.
	FindByEntrepreneur(ctx context.Context, entrepreneurID uuid.UUID) ([]*entity.Transaction, error)

	// ReplaceAll overwrites the entire collection.
	ReplaceAll(ctx context.Context, transactions []*entity.Transaction) error
}

// EntrepreneurRepository defines the interface for entrepreneur persistence operations.
type EntrepreneurRepository interface {
	// Save writes one entrepreneur by ID, inserting or replacing it. Goals are not touched.
	Save(ctx context.Context, entrepreneur *entity.Entrepreneur) error

	// Delete removes one entrepreneur and its goals.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves an entrepreneur with its goals.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entrepreneur, error)

	// FindAll returns every entrepreneur with goals in insertion order.
	FindAll(ctx context.Context) ([]*entity.Entrepreneur, error)

	// ReplaceAll overwrites the entire collection, goals included.
	ReplaceAll(ctx context.Context, entrepreneurs []*entity.Entrepreneur) error

	// SaveGoal writes one goal of an entrepreneur.
	SaveGoal(ctx context.Context, goal *entity.Goal) error

	// DeleteGoal removes one goal of an entrepreneur.
	DeleteGoal(ctx context.Context, entrepreneurID, goalID uuid.UUID) error
}

// LedgerUpdate is a multi-path change applied atomically.
type LedgerUpdate struct {
	PutTransactions       []*entity.Transaction
	DeleteTransactionIDs  []uuid.UUID
	PutEntrepreneurs      []*entity.Entrepreneur
	DeleteEntrepreneurIDs []uuid.UUID
	PutGoals              []*entity.Goal
	DeleteGoalIDs         []uuid.UUID
}

// Collections returns the collections touched by the update.
func (u LedgerUpdate) Collections() []LedgerCollection {
	var collections []LedgerCollection
	if len(u.PutTransactions) > 0 || len(u.DeleteTransactionIDs) > 0 {
		collections = append(collections, CollectionTransactions)
	}
	if len(u.PutEntrepreneurs) > 0 || len(u.DeleteEntrepreneurIDs) > 0 ||
		len(u.PutGoals) > 0 || len(u.DeleteGoalIDs) > 0 {
		collections = append(collections, CollectionEntrepreneurs)
	}
	return collections
}

// LedgerUpdater applies multi-path updates in a single database transaction.
type LedgerUpdater interface {
	ApplyUpdate(ctx context.Context, update LedgerUpdate) error
}

// ChangeNotifier signals that a collection changed. Subscribers receive one
// tick per change and re-read the full collection.
type ChangeNotifier interface {
	// Publish announces a change of collection.
	Publish(ctx context.Context, collection LedgerCollection) error

	// Subscribe returns a channel that ticks on every change until ctx is done.
	Subscribe(ctx context.Context, collection LedgerCollection) (<-chan struct{}, error)
}

// NotifyChanges publishes every collection, logging failures. A failed
// notification never fails the write that caused it.
func NotifyChanges(ctx context.Context, notifier ChangeNotifier, collections ...LedgerCollection) {
	if notifier == nil {
		return
	}
	for _, c := range collections {
		if err := notifier.Publish(ctx, c); err != nil {
			slog.Warn("Failed to publish ledger change", "collection", c, "error", err)
		}
	}
}
