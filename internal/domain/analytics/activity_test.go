package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/domain/entity"
)

func TestMergeRecentActivity(t *testing.T) {
	ada := entity.NewEntrepreneur("Ada", "", "", "", day("2024-03-05"))
	txs := []*entity.Transaction{
		withCustomer(income("2024-03-01", "10"), "first"),
		withCustomer(income("2024-03-05", "20"), "same-day"),
		withCustomer(expense("2024-03-07", "5"), "latest"),
	}
	txs[0].EntrepreneurID = ada.ID

	events := append(TransactionEvents(txs, entity.EntrepreneurNames([]*entity.Entrepreneur{ada})),
		EntrepreneurEvents([]*entity.Entrepreneur{ada})...)

	merged := MergeRecentActivity(events, 3)
	require.Len(t, merged, 3)

	assert.Equal(t, "latest", merged[0].Description)
	assert.Equal(t, "same-day", merged[1].Description, "same-day events keep input order")
	assert.Equal(t, ActivityNewEntrepreneur, merged[2].Kind)
	assert.Equal(t, "Ada", merged[2].EntrepreneurName)

	assert.Len(t, events, 4, "input is not modified")
	assert.Equal(t, "first", events[0].Description)
}

func TestMergeRecentActivity_Empty(t *testing.T) {
	merged := MergeRecentActivity(nil, DefaultRecentActivity)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}

func TestTransactionEvents_DanglingEntrepreneur(t *testing.T) {
	events := TransactionEvents([]*entity.Transaction{income("2024-03-01", "10")}, nil)
	require.Len(t, events, 1)
	assert.Equal(t, entity.UnknownEntrepreneurName, events[0].EntrepreneurName)
	require.NotNil(t, events[0].Amount)
	assert.True(t, events[0].Amount.Equal(dec("10")))
}
