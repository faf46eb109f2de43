// Package fake provides in-memory adapter implementations for use case tests.
package fake

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// Ledger is an in-memory ledger store. It implements TransactionRepository,
// LedgerUpdater and, through Entrepreneurs, EntrepreneurRepository.
type Ledger struct {
	mu            sync.Mutex
	transactions  map[uuid.UUID]entity.Transaction
	entrepreneurs map[uuid.UUID]entity.Entrepreneur
	order         []uuid.UUID // insertion order of transactions
	FailWith      error
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions:  make(map[uuid.UUID]entity.Transaction),
		entrepreneurs: make(map[uuid.UUID]entity.Entrepreneur),
	}
}

// Entrepreneurs returns the entrepreneur repository view of the ledger.
func (l *Ledger) Entrepreneurs() adapter.EntrepreneurRepository {
	return &entrepreneurView{l: l}
}

// Seed stores transactions and entrepreneurs directly.
func (l *Ledger) Seed(transactions []*entity.Transaction, entrepreneurs []*entity.Entrepreneur) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range entrepreneurs {
		l.putEntrepreneur(e)
	}
	for _, t := range transactions {
		l.putTransaction(t)
	}
}

// Save implements adapter.TransactionRepository.
func (l *Ledger) Save(_ context.Context, transaction *entity.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailWith != nil {
		return l.FailWith
	}
	l.putTransaction(transaction)
	return nil
}

// Delete implements adapter.TransactionRepository.
func (l *Ledger) Delete(_ context.Context, id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	l.deleteTransaction(id)
	return nil
}

// FindByID implements adapter.TransactionRepository.
func (l *Ledger) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	t, ok := l.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return &t, nil
}

// FindAll implements adapter.TransactionRepository.
func (l *Ledger) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return l.filter(func(*entity.Transaction) bool { return true })
}

// FindByEntrepreneur implements adapter.TransactionRepository.
func (l *Ledger) FindByEntrepreneur(_ context.Context, entrepreneurID uuid.UUID) ([]*entity.Transaction, error) {
	return l.filter(func(t *entity.Transaction) bool { return t.EntrepreneurID == entrepreneurID })
}

// ReplaceAll implements adapter.TransactionRepository.
func (l *Ledger) ReplaceAll(_ context.Context, transactions []*entity.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailWith != nil {
		return l.FailWith
	}
	l.transactions = make(map[uuid.UUID]entity.Transaction)
	l.order = nil
	for _, t := range transactions {
		l.putTransaction(t)
	}
	return nil
}

// ApplyUpdate implements adapter.LedgerUpdater.
func (l *Ledger) ApplyUpdate(_ context.Context, update adapter.LedgerUpdate) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailWith != nil {
		return l.FailWith
	}
	for _, id := range update.DeleteTransactionIDs {
		l.deleteTransaction(id)
	}
	for _, id := range update.DeleteGoalIDs {
		for eid, e := range l.entrepreneurs {
			e.Goals = withoutGoal(e.Goals, id)
			l.entrepreneurs[eid] = e
		}
	}
	for _, id := range update.DeleteEntrepreneurIDs {
		delete(l.entrepreneurs, id)
	}
	for _, e := range update.PutEntrepreneurs {
		l.putEntrepreneur(e)
	}
	for _, g := range update.PutGoals {
		l.putGoal(g)
	}
	for _, t := range update.PutTransactions {
		l.putTransaction(t)
	}
	return nil
}

func (l *Ledger) filter(keep func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.FailWith != nil {
		return nil, l.FailWith
	}
	result := make([]*entity.Transaction, 0, len(l.order))
	for _, id := range l.order {
		t := l.transactions[id]
		if keep(&t) {
			result = append(result, &t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

func (l *Ledger) putTransaction(t *entity.Transaction) {
	if _, ok := l.transactions[t.ID]; !ok {
		l.order = append(l.order, t.ID)
	}
	l.transactions[t.ID] = *t
}

func (l *Ledger) deleteTransaction(id uuid.UUID) {
	delete(l.transactions, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *Ledger) putEntrepreneur(e *entity.Entrepreneur) {
	stored := *e
	if existing, ok := l.entrepreneurs[e.ID]; ok {
		stored.Goals = existing.Goals
	} else {
		stored.Goals = append([]entity.Goal{}, e.Goals...)
	}
	l.entrepreneurs[e.ID] = stored
}

func (l *Ledger) putGoal(g *entity.Goal) {
	e, ok := l.entrepreneurs[g.EntrepreneurID]
	if !ok {
		return
	}
	goals := append([]entity.Goal{}, e.Goals...)
	for i := range goals {
		if goals[i].ID == g.ID {
			goals[i] = *g
			e.Goals = goals
			l.entrepreneurs[e.ID] = e
			return
		}
	}
	e.Goals = append(goals, *g)
	l.entrepreneurs[e.ID] = e
}

func withoutGoal(goals []entity.Goal, id uuid.UUID) []entity.Goal {
	kept := make([]entity.Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	return kept
}

type entrepreneurView struct {
	l *Ledger
}

func (v *entrepreneurView) Save(_ context.Context, e *entity.Entrepreneur) error {
	v.l.mu.Lock()
	defer v.l.mu.Unlock()
	if v.l.FailWith != nil {
		return v.l.FailWith
	}
	v.l.putEntrepreneur(e)
	return nil
}

func (v *entrepreneurView) Delete(_ context.Context, id uuid.UUID) error {
	v.l.mu.Lock()
	defer v.l.mu.Unlock()
	if _, ok := v.l.entrepreneurs[id]; !ok {
		return domainerror.ErrEntrepreneurNotFound
	}
	delete(v.l.entrepreneurs, id)
	return nil
}

func (v *entrepreneurView) FindByID(_ context.Context, id uuid.UUID) (*entity.Entrepreneur, error) {
	v.l.mu.Lock()
	defer v.l.mu.Unlock()
	e, ok := v.l.entrepreneurs[id]
	if !ok {
		return nil, domainerror.ErrEntrepreneurNotFound
	}
	e.Goals = append([]entity.Goal{}, e.Goals...)
	return &e, nil
}

func (v *entrepreneurView) FindAll(_ context.Context) ([]*entity.Entrepreneur, error) {
	v.l.mu.Lock()
	defer v.l.mu.Unlock()
	if v.l.FailWith != nil {
		return nil, v.l.FailWith
	}
	result := make([]*entity.Entrepreneur, 0, len(v.l.entrepreneurs))
	for _, e := range v.l.entrepreneurs {
		e := e
		e.Goals = append([]entity.Goal{}, e.Goals...)
		result = append(result, &e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result, nil
}

func (v *entrepreneurView) ReplaceAll(_ context.Context, entrepreneurs []*entity.Entrepreneur) error {
	v.l.mu.Lock()
	defer v.l.mu.Unlock()
	v.l.entrepreneurs = make(map[uuid.UUID]entity.Entrepreneur)
	for _, e := range entrepreneurs {
		v.l.putEntrepreneur(e)
	}
	return nil
}

func (v *entrepreneurView) SaveGoal(_ context.Context, g *entity.Goal) error {
	v.l.mu.Lock()
	defer v.l.mu.Unlock()
	if _, ok := v.l.entrepreneurs[g.EntrepreneurID]; !ok {
		return domainerror.ErrEntrepreneurNotFound
	}
	v.l.putGoal(g)
	return nil
}

func (v *entrepreneurView) DeleteGoal(_ context.Context, entrepreneurID, goalID uuid.UUID) error {
	v.l.mu.Lock()
	defer v.l.mu.Unlock()
	e, ok := v.l.entrepreneurs[entrepreneurID]
	if !ok {
		return domainerror.ErrGoalNotFound
	}
	kept := withoutGoal(e.Goals, goalID)
	if len(kept) == len(e.Goals) {
		return domainerror.ErrGoalNotFound
	}
	e.Goals = kept
	v.l.entrepreneurs[entrepreneurID] = e
	return nil
}
