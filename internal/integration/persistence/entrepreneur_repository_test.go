package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func TestEntrepreneurRepository_GoalsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewEntrepreneurRepository(newTestDB(t))

	e := newEntrepreneur(t, "Abena", "2024-01-10")
	require.NoError(t, repo.Save(ctx, e))

	titles := []string{"Reach 5k", "Open stall", "Cut costs"}
	for _, title := range titles {
		goal := entity.NewGoal(e.ID, title, entity.GoalTypeRevenueTarget, decimal.NewFromInt(5000), mustDate(t, "2024-06-30"))
		require.NoError(t, repo.SaveGoal(ctx, goal))
	}

	found, err := repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, found.Goals, 3)
	for i, title := range titles {
		assert.Equal(t, title, found.Goals[i].Title)
	}

	first := found.Goals[0]
	first.Title = "Reach 6k"
	require.NoError(t, repo.SaveGoal(ctx, &first))
	found, err = repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reach 6k", found.Goals[0].Title)

	require.NoError(t, repo.DeleteGoal(ctx, e.ID, found.Goals[1].ID))
	assert.ErrorIs(t, repo.DeleteGoal(ctx, e.ID, uuid.New()), domainerror.ErrGoalNotFound)

	found, err = repo.FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, found.Goals, 2)
	assert.Equal(t, "Cut costs", found.Goals[1].Title)
}

func TestEntrepreneurRepository_DeleteRemovesGoals(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewEntrepreneurRepository(db)

	e := newEntrepreneur(t, "Kofi", "2024-02-01")
	require.NoError(t, repo.Save(ctx, e))
	require.NoError(t, repo.SaveGoal(ctx, entity.NewGoal(e.ID, "Launch", entity.GoalTypeCustomMilestone, decimal.Zero, mustDate(t, "2024-05-01"))))

	require.NoError(t, repo.Delete(ctx, e.ID))
	_, err := repo.FindByID(ctx, e.ID)
	assert.ErrorIs(t, err, domainerror.ErrEntrepreneurNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, e.ID), domainerror.ErrEntrepreneurNotFound)

	var goals int64
	require.NoError(t, db.Table("goals").Count(&goals).Error)
	assert.Zero(t, goals)
}

func TestEntrepreneurRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewEntrepreneurRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, newEntrepreneur(t, "Old", "2023-01-01")))

	fresh := newEntrepreneur(t, "Esi", "2024-03-01")
	fresh.Goals = []entity.Goal{
		*entity.NewGoal(fresh.ID, "First", entity.GoalTypeProfitTarget, decimal.NewFromInt(100), mustDate(t, "2024-04-30")),
		*entity.NewGoal(fresh.ID, "Second", entity.GoalTypeExpenseReduction, decimal.NewFromInt(50), mustDate(t, "2024-05-31")),
	}
	require.NoError(t, repo.ReplaceAll(ctx, []*entity.Entrepreneur{fresh}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Esi", all[0].Name)
	require.Len(t, all[0].Goals, 2)
	assert.Equal(t, "First", all[0].Goals[0].Title)
	assert.Equal(t, "2024-04-30", entity.FormatDate(all[0].Goals[0].TargetDate))
}

func TestLedgerUpdater_CascadesEntrepreneurDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	entrepreneurs := NewEntrepreneurRepository(db)
	transactions := NewTransactionRepository(db)
	updater := NewLedgerUpdater(db)

	keep := newEntrepreneur(t, "Keep", "2024-01-01")
	drop := newEntrepreneur(t, "Drop", "2024-01-02")
	require.NoError(t, entrepreneurs.Save(ctx, keep))
	require.NoError(t, entrepreneurs.Save(ctx, drop))

	kept := newIncome(t, keep.ID, "2024-03-01", "10")
	dropped := newIncome(t, drop.ID, "2024-03-02", "20")
	require.NoError(t, transactions.Save(ctx, kept))
	require.NoError(t, transactions.Save(ctx, dropped))

	update := adapter.LedgerUpdate{
		DeleteEntrepreneurIDs: []uuid.UUID{drop.ID},
		DeleteTransactionIDs:  []uuid.UUID{dropped.ID},
	}
	require.NoError(t, updater.ApplyUpdate(ctx, update))

	all, err := transactions.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.ID, all[0].ID)

	people, err := entrepreneurs.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, keep.ID, people[0].ID)
}

func TestLedgerUpdater_PutsAcrossCollections(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	updater := NewLedgerUpdater(db)

	e := newEntrepreneur(t, "Yaw", "2024-01-01")
	goal := entity.NewGoal(e.ID, "Grow", entity.GoalTypeRevenueTarget, decimal.NewFromInt(1000), mustDate(t, "2024-03-31"))
	tx := newIncome(t, e.ID, "2024-03-03", "300")

	require.NoError(t, updater.ApplyUpdate(ctx, adapter.LedgerUpdate{
		PutEntrepreneurs: []*entity.Entrepreneur{e},
		PutGoals:         []*entity.Goal{goal},
		PutTransactions:  []*entity.Transaction{tx},
	}))

	found, err := NewEntrepreneurRepository(db).FindByID(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, found.Goals, 1)
	assert.Equal(t, "Grow", found.Goals[0].Title)

	txs, err := NewTransactionRepository(db).FindByEntrepreneur(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}
