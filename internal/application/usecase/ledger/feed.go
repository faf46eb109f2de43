// Package ledger contains the live ledger feed use case.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// Snapshot is a full replacement copy of one collection. Only the slice
// matching Collection is set.
type Snapshot struct {
	Collection    adapter.LedgerCollection
	Transactions  []*entity.Transaction
	Entrepreneurs []*entity.Entrepreneur
	Users         []*entity.User
}

// Feed streams collection snapshots to live subscribers.
type Feed struct {
	transactionRepo  adapter.TransactionRepository
	entrepreneurRepo adapter.EntrepreneurRepository
	userRepo         adapter.UserRepository
	notifier         adapter.ChangeNotifier
}

// NewFeed creates a new Feed instance.
func NewFeed(
	transactionRepo adapter.TransactionRepository,
	entrepreneurRepo adapter.EntrepreneurRepository,
	userRepo adapter.UserRepository,
	notifier adapter.ChangeNotifier,
) *Feed {
	return &Feed{
		transactionRepo:  transactionRepo,
		entrepreneurRepo: entrepreneurRepo,
		userRepo:         userRepo,
		notifier:         notifier,
	}
}

// Subscribe pushes the current snapshot of collection, then a fresh one after
// every change, until ctx is done. The returned channel is closed on exit.
func (f *Feed) Subscribe(ctx context.Context, collection adapter.LedgerCollection) (<-chan Snapshot, error) {
	if !adapter.IsValidLedgerCollection(collection) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnknownCollection,
			"unknown collection: "+string(collection),
			domainerror.ErrUnknownCollection,
		)
	}

	ticks, err := f.notifier.Subscribe(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", collection, err)
	}

	out := make(chan Snapshot)
	go func() {
		defer close(out)
		logger := slog.With("collection", collection)

		push := func() bool {
			snapshot, err := f.Load(ctx, collection)
			if err != nil {
				logger.Warn("Failed to load ledger snapshot", "error", err)
				return ctx.Err() == nil
			}
			select {
			case out <- *snapshot:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !push() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ticks:
				if !ok || !push() {
					return
				}
			}
		}
	}()

	return out, nil
}

// Load reads one full snapshot of collection.
func (f *Feed) Load(ctx context.Context, collection adapter.LedgerCollection) (*Snapshot, error) {
	snapshot := &Snapshot{Collection: collection}
	var err error

	switch collection {
	case adapter.CollectionTransactions:
		snapshot.Transactions, err = f.transactionRepo.FindAll(ctx)
	case adapter.CollectionEntrepreneurs:
		snapshot.Entrepreneurs, err = f.entrepreneurRepo.FindAll(ctx)
	case adapter.CollectionUsers:
		snapshot.Users, err = f.userRepo.FindAll(ctx)
	default:
		return nil, domainerror.ErrUnknownCollection
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
