package persistence

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bizportal/backend/internal/domain/entity"
	"github.com/bizportal/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.EntrepreneurModel{},
		&model.GoalModel{},
		&model.TransactionModel{},
		&model.ReportModel{},
		&model.EmailQueueModel{},
	))
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := entity.ParseLedgerDate(s)
	require.NoError(t, err)
	return d
}

func newIncome(t *testing.T, entrepreneurID uuid.UUID, date, amount string) *entity.Transaction {
	t.Helper()
	tx := entity.NewTransaction(entrepreneurID, entity.TransactionTypeIncome, mustDate(t, date),
		decimal.RequireFromString(amount), entity.PaymentMethodCash, nil, "Ama", "Catering", "")
	return tx
}

func newExpense(t *testing.T, entrepreneurID uuid.UUID, date, amount string) *entity.Transaction {
	t.Helper()
	return entity.NewTransaction(entrepreneurID, entity.TransactionTypeExpense, mustDate(t, date),
		decimal.RequireFromString(amount), entity.PaymentMethodCard, nil, "", "Supplies", "")
}

func newEntrepreneur(t *testing.T, name, startDate string) *entity.Entrepreneur {
	t.Helper()
	return entity.NewEntrepreneur(name, name+" Ltd", "owner@example.com", "", mustDate(t, startDate))
}
