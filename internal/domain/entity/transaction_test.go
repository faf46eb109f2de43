package entity

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func TestParseLedgerDate(t *testing.T) {
	d, err := ParseLedgerDate(" 2024-03-05 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "05/03/2024", "2024-03-05T10:00:00Z", "2024-02-30"} {
		_, err := ParseLedgerDate(bad)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidTransactionDate), bad)
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("120.50")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("120.5")))

	_, err = ParseAmount("twelve")
	assert.True(t, errors.Is(err, domainerror.ErrInvalidTransactionAmount))

	_, err = ParseAmount("-1")
	assert.True(t, errors.Is(err, domainerror.ErrInvalidTransactionAmount))
}

func TestNewTransaction_PaidStatusDefaults(t *testing.T) {
	pending := PaidStatusPending
	date := time.Date(2024, time.March, 5, 18, 45, 0, 0, time.FixedZone("X", 3600))

	in := NewTransaction(uuid.New(), TransactionTypeIncome, date, decimal.NewFromInt(10), "", nil, " Mo ", "", "")
	require.NotNil(t, in.PaidStatus)
	assert.Equal(t, PaidStatusFull, *in.PaidStatus)
	assert.Equal(t, PaymentMethodCash, in.PaymentMethod)
	assert.Equal(t, "Mo", in.CustomerName)
	assert.Equal(t, "2024-03-05", in.DateKey())

	out := NewTransaction(uuid.New(), TransactionTypeExpense, date, decimal.NewFromInt(10), PaymentMethodCard, &pending, "", "", "")
	assert.Nil(t, out.PaidStatus)
	_, ok := out.IncomePaidStatus()
	assert.False(t, ok)
}

func TestTransaction_Validate(t *testing.T) {
	valid := func() *Transaction {
		return NewTransaction(uuid.New(), TransactionTypeIncome, time.Now(), decimal.NewFromInt(10), PaymentMethodMobileMoney, nil, "", "", "")
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Transaction)
		code   domainerror.TransactionErrorCode
	}{
		{name: "missing entrepreneur", mutate: func(tx *Transaction) { tx.EntrepreneurID = uuid.Nil }, code: domainerror.ErrCodeMissingEntrepreneurRef},
		{name: "bad type", mutate: func(tx *Transaction) { tx.Type = "refund" }, code: domainerror.ErrCodeInvalidTransactionType},
		{name: "zero date", mutate: func(tx *Transaction) { tx.Date = time.Time{} }, code: domainerror.ErrCodeInvalidTransactionDate},
		{name: "negative amount", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) }, code: domainerror.ErrCodeInvalidTransactionAmount},
		{name: "bad method", mutate: func(tx *Transaction) { tx.PaymentMethod = "barter" }, code: domainerror.ErrCodeInvalidPaymentMethod},
		{name: "bad status", mutate: func(tx *Transaction) { s := PaidStatus("half"); tx.PaidStatus = &s }, code: domainerror.ErrCodeInvalidPaidStatus},
		{name: "long notes", mutate: func(tx *Transaction) { tx.Notes = strings.Repeat("x", 1001) }, code: domainerror.ErrCodeNotesTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(tx)

			var txErr *domainerror.TransactionError
			require.True(t, errors.As(tx.Validate(), &txErr))
			assert.Equal(t, tt.code, txErr.Code)
		})
	}
}

func TestGoal_Validate(t *testing.T) {
	target := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, NewGoal(uuid.New(), "Sell more", GoalTypeRevenueTarget, decimal.NewFromInt(100), target).Validate())
	assert.NoError(t, NewGoal(uuid.New(), "Open shop", GoalTypeCustomMilestone, decimal.Zero, target).Validate())

	err := NewGoal(uuid.New(), "Sell more", GoalTypeRevenueTarget, decimal.Zero, target).Validate()
	assert.True(t, errors.Is(err, domainerror.ErrInvalidTargetValue))

	err = NewGoal(uuid.New(), " ", GoalTypeRevenueTarget, decimal.NewFromInt(1), target).Validate()
	assert.True(t, errors.Is(err, domainerror.ErrMissingGoalTitle))

	assert.Equal(t, "2024-03", NewGoal(uuid.New(), "x", GoalTypeCustomMilestone, decimal.Zero, target).EvaluationMonth())
}

func TestEmailJob_MarkFailed(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	job := NewEmailJob(TemplateReportDelivery, "a@b.c", "A", "Report", nil, now)
	assert.True(t, job.IsReadyToProcess(now))

	job.MarkFailed(errors.New("timeout"), false, now)
	assert.Equal(t, EmailStatusPending, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, now.Add(time.Minute), job.ScheduledAt)
	assert.False(t, job.IsReadyToProcess(now))
	assert.True(t, job.IsOpen())

	job.MarkFailed(errors.New("timeout"), false, now)
	job.MarkFailed(errors.New("timeout"), false, now)
	assert.Equal(t, EmailStatusFailed, job.Status)
	require.NotNil(t, job.ProcessedAt)
	assert.Equal(t, now, *job.ProcessedAt)
	assert.False(t, job.IsOpen())

	permanent := NewEmailJob(TemplateReportDelivery, "a@b.c", "A", "Report", nil, now)
	permanent.MarkFailed(errors.New("invalid recipient"), true, now)
	assert.Equal(t, EmailStatusFailed, permanent.Status)
}
