package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/domain/entity"
)

func TestTopCustomers_StableTies(t *testing.T) {
	txs := []*entity.Transaction{
		withCustomer(income("2024-03-01", "300"), "A"),
		withCustomer(income("2024-03-02", "300"), "B"),
		withCustomer(income("2024-03-03", "200"), "C"),
		withCustomer(income("2024-03-04", "100"), "D"),
		withCustomer(income("2024-03-05", "50"), "E"),
	}

	ranks := TopCustomers(txs, 3)
	require.Len(t, ranks, 3)
	assert.Equal(t, "A", ranks[0].Name)
	assert.Equal(t, "B", ranks[1].Name)
	assert.Equal(t, "C", ranks[2].Name)
	assert.True(t, ranks[0].Amount.Equal(dec("300")))
}

func TestTopCustomers_GroupsAndExcludesBlank(t *testing.T) {
	txs := []*entity.Transaction{
		withCustomer(income("2024-03-01", "10"), "Mo"),
		withCustomer(income("2024-03-09", "15"), "Mo"),
		withCustomer(income("2024-03-05", "5"), "Mo"),
		income("2024-03-02", "1000"),
		withCustomer(income("2024-03-02", "1000"), "   "),
		withCustomer(expense("2024-03-02", "1000"), "Supplier"),
	}

	ranks := TopCustomers(txs, 5)
	require.Len(t, ranks, 1)
	assert.Equal(t, "Mo", ranks[0].Name)
	assert.True(t, ranks[0].Amount.Equal(dec("30")))
	assert.Equal(t, 3, ranks[0].TransactionCount)
	assert.Equal(t, day("2024-03-09"), ranks[0].LastPurchaseDate)
}

func TestTopProducts(t *testing.T) {
	txs := []*entity.Transaction{
		withCategory(income("2024-03-01", "10"), "Soap"),
		withCategory(income("2024-03-02", "40"), "Bread"),
		withCategory(income("2024-03-03", "20"), "Soap"),
		income("2024-03-04", "500"),
	}

	ranks := TopProducts(txs, 5)
	require.Len(t, ranks, 2)
	assert.Equal(t, "Bread", ranks[0].Category)
	assert.Equal(t, "Soap", ranks[1].Category)
	assert.Equal(t, 2, ranks[1].TransactionCount)
}

func TestTopEntrepreneurs_UnknownName(t *testing.T) {
	missing := uuid.New()
	tx := income("2024-03-01", "10")
	tx.EntrepreneurID = missing

	ranks := TopEntrepreneurs([]*entity.Transaction{tx, income("2024-03-01", "5")},
		map[uuid.UUID]string{testEntrepreneurID: "Ada"}, 5)

	require.Len(t, ranks, 2)
	assert.Equal(t, entity.UnknownEntrepreneurName, ranks[0].Name)
	assert.Equal(t, "Ada", ranks[1].Name)
}

func TestRankings_NonPositiveN(t *testing.T) {
	txs := []*entity.Transaction{withCustomer(income("2024-03-01", "10"), "Mo")}

	assert.Empty(t, TopCustomers(txs, 0))
	assert.NotNil(t, TopProducts(txs, -1))
}
