package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/application/adapter/fake"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func receive(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case s, ok := <-ch:
		if !ok {
			t.Fatal("feed closed unexpectedly")
		}
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
	}
	return Snapshot{}
}

func TestFeed_PushesSnapshotsOnChange(t *testing.T) {
	ledger := fake.NewLedger()
	notifier := fake.NewNotifier()
	feed := NewFeed(ledger, ledger.Entrepreneurs(), &fake.Users{}, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, err := feed.Subscribe(ctx, adapter.CollectionTransactions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	initial := receive(t, snapshots)
	if initial.Collection != adapter.CollectionTransactions || len(initial.Transactions) != 0 {
		t.Fatalf("unexpected initial snapshot %+v", initial)
	}

	tx := entity.NewTransaction(uuid.New(), entity.TransactionTypeExpense,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(40),
		entity.PaymentMethodCash, nil, "", "Rent", "")
	if err := ledger.Save(ctx, tx); err != nil {
		t.Fatalf("save: %v", err)
	}
	adapter.NotifyChanges(ctx, notifier, adapter.CollectionTransactions)

	next := receive(t, snapshots)
	if len(next.Transactions) != 1 || next.Transactions[0].ID != tx.ID {
		t.Fatalf("expected the new transaction in the snapshot, got %+v", next.Transactions)
	}
	if next.Entrepreneurs != nil || next.Users != nil {
		t.Error("only the subscribed collection should be set")
	}

	cancel()
	select {
	case _, ok := <-snapshots:
		if ok {
			// A snapshot in flight may still arrive; the channel must close after it.
			for range snapshots {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not close after cancellation")
	}
}

func TestFeed_UnknownCollection(t *testing.T) {
	ledger := fake.NewLedger()
	feed := NewFeed(ledger, ledger.Entrepreneurs(), &fake.Users{}, fake.NewNotifier())

	_, err := feed.Subscribe(context.Background(), adapter.LedgerCollection("goals"))
	if !errors.Is(err, domainerror.ErrUnknownCollection) {
		t.Errorf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestFeed_Load(t *testing.T) {
	ledger := fake.NewLedger()
	e := entity.NewEntrepreneur("Akua", "", "", "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ledger.Seed(nil, []*entity.Entrepreneur{e})
	users := &fake.Users{}
	_ = users.Create(context.Background(), entity.NewUser("ama@example.com", "Ama", "x", entity.UserRoleAdmin))
	feed := NewFeed(ledger, ledger.Entrepreneurs(), users, fake.NewNotifier())

	s, err := feed.Load(context.Background(), adapter.CollectionEntrepreneurs)
	if err != nil || len(s.Entrepreneurs) != 1 {
		t.Fatalf("expected 1 entrepreneur, got %+v (%v)", s, err)
	}
	s, err = feed.Load(context.Background(), adapter.CollectionUsers)
	if err != nil || len(s.Users) != 1 {
		t.Fatalf("expected 1 user, got %+v (%v)", s, err)
	}
}
