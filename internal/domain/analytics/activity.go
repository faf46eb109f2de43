// Package analytics derives period-scoped summaries, chart series, rankings and
// goal progress from a snapshot of the ledger.
package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

// ActivityKind distinguishes entries of the recent activity feed.
type ActivityKind string

const (
	ActivityTransaction     ActivityKind = "transaction"
	ActivityNewEntrepreneur ActivityKind = "new_entrepreneur"
)

// ActivityEvent is one dated entry of the recent activity feed.
type ActivityEvent struct {
	Kind             ActivityKind
	Date             time.Time
	EntrepreneurID   uuid.UUID
	EntrepreneurName string
	Description      string
	Amount           *decimal.Decimal
	TransactionType  entity.TransactionType
}

// TransactionEvents turns transactions into activity events, in input order.
func TransactionEvents(txs []*entity.Transaction, names map[uuid.UUID]string) []ActivityEvent {
	events := make([]ActivityEvent, 0, len(txs))
	for _, tx := range txs {
		amount := tx.Amount
		description := tx.ProductServiceCategory
		if tx.CustomerName != "" {
			description = tx.CustomerName
		}
		events = append(events, ActivityEvent{
			Kind:             ActivityTransaction,
			Date:             tx.Date,
			EntrepreneurID:   tx.EntrepreneurID,
			EntrepreneurName: displayName(names, tx.EntrepreneurID),
			Description:      description,
			Amount:           &amount,
			TransactionType:  tx.Type,
		})
	}
	return events
}

// EntrepreneurEvents turns entrepreneur start dates into activity events.
func EntrepreneurEvents(entrepreneurs []*entity.Entrepreneur) []ActivityEvent {
	events := make([]ActivityEvent, 0, len(entrepreneurs))
	for _, e := range entrepreneurs {
		if e.StartDate.IsZero() {
			continue
		}
		events = append(events, ActivityEvent{
			Kind:             ActivityNewEntrepreneur,
			Date:             e.StartDate,
			EntrepreneurID:   e.ID,
			EntrepreneurName: e.DisplayName(),
			Description:      "Joined the programme",
		})
	}
	return events
}

// MergeRecentActivity orders events newest first and keeps the first n.
// Events on the same day keep their input order.
func MergeRecentActivity(events []ActivityEvent, n int) []ActivityEvent {
	if n <= 0 {
		return []ActivityEvent{}
	}

	merged := make([]ActivityEvent, len(events))
	copy(merged, events)

	sort.SliceStable(merged, func(i, j int) bool {
		return calendarDay(merged[i].Date).After(calendarDay(merged[j].Date))
	})

	if len(merged) > n {
		merged = merged[:n]
	}
	return merged
}
