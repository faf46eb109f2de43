package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/domain/entity"
)

func marchPeriod(t *testing.T) ExplicitPeriod {
	t.Helper()
	p, err := ParseExplicitPeriod("2024-03")
	require.NoError(t, err)
	return p
}

func TestComputeTotals(t *testing.T) {
	txs := []*entity.Transaction{
		income("2024-03-01", "100.50"),
		income("2024-03-02", "49.50"),
		expense("2024-03-03", "30"),
	}

	totals := ComputeTotals(txs)
	assert.True(t, totals.Income.Equal(dec("150")))
	assert.True(t, totals.Expenses.Equal(dec("30")))
	assert.True(t, totals.Net.Equal(totals.Income.Sub(totals.Expenses)))
	assert.Equal(t, 2, totals.IncomeCount)
	assert.Equal(t, 1, totals.ExpenseCount)
	assert.Equal(t, 3, totals.TransactionCount)
}

func TestComputeReceivables(t *testing.T) {
	txs := []*entity.Transaction{
		withStatus(income("2024-03-01", "100"), entity.PaidStatusFull),
		withStatus(income("2024-03-02", "50"), entity.PaidStatusPending),
		withStatus(income("2024-03-03", "25"), entity.PaidStatusPartial),
		expense("2024-03-04", "500"),
	}

	r := ComputeReceivables(txs)
	assert.True(t, r.TotalBilled.Equal(dec("175")))
	assert.True(t, r.Outstanding.Equal(dec("75")))
	assert.Equal(t, 2, r.OutstandingCount)
	assert.InDelta(t, 57.14, r.CollectionRate, 0.01)
	assert.InDelta(t, 33.33, r.FullPaymentRate, 0.01)
}

func TestComputeReceivables_IgnoresExpenseStatus(t *testing.T) {
	exp := expense("2024-03-04", "500")
	exp.PaidStatus = paid(entity.PaidStatusPending)

	r := ComputeReceivables([]*entity.Transaction{exp})
	assert.True(t, r.Outstanding.IsZero())
	assert.Zero(t, r.CollectionRate)
	assert.Zero(t, r.FullPaymentRate)
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []*entity.Transaction{
		withCategory(income("2024-03-01", "100"), "Catering"),
		withCategory(income("2024-03-02", "200"), "Tailoring"),
		income("2024-03-03", "100"),
		withCategory(income("2024-03-04", "100"), "  "),
		withCategory(expense("2024-03-05", "70"), "Rent"),
	}

	shares := CategoryBreakdown(txs, entity.TransactionTypeIncome)
	require.Len(t, shares, 3)

	assert.Equal(t, "Tailoring", shares[0].Category)
	assert.Equal(t, UncategorizedCategory, shares[1].Category, "ties keep first-encountered order")
	assert.Equal(t, 2, shares[1].TransactionCount)
	assert.Equal(t, "Catering", shares[2].Category)
	assert.Equal(t, 40.0, shares[0].Percentage)

	sum := decimal.Zero
	percent := 0.0
	for _, s := range shares {
		sum = sum.Add(s.Amount)
		percent += s.Percentage
	}
	assert.True(t, sum.Equal(ComputeTotals(txs).Income), "categories partition total income")
	assert.InDelta(t, 100, percent, 0.05)

	expenses := CategoryBreakdown(txs, entity.TransactionTypeExpense)
	require.Len(t, expenses, 1)
	assert.Equal(t, 100.0, expenses[0].Percentage)
}

func TestCountNewEntrepreneurs(t *testing.T) {
	entrepreneurs := []*entity.Entrepreneur{
		entity.NewEntrepreneur("Ada", "", "", "", day("2024-03-10")),
		entity.NewEntrepreneur("Ben", "", "", "", day("2024-02-10")),
		entity.NewEntrepreneur("Cy", "", "", "", day("2024-03-31")),
	}

	assert.Equal(t, 2, CountNewEntrepreneurs(entrepreneurs, marchPeriod(t)))
	assert.Equal(t, 0, CountNewEntrepreneurs(nil, marchPeriod(t)))
}

func TestAggregate(t *testing.T) {
	known := entity.NewEntrepreneur("Ada", "Ada's Kitchen", "", "", day("2024-03-01"))
	dangling := uuid.New()

	txs := []*entity.Transaction{
		withCustomer(withCategory(withStatus(income("2024-03-02", "300"), entity.PaidStatusFull), "Catering"), "Mo"),
		withCustomer(withStatus(income("2024-03-05", "100"), entity.PaidStatusPending), "Zed"),
		expense("2024-03-06", "100"),
		income("2024-04-01", "1000"),
	}
	txs[0].EntrepreneurID = known.ID
	txs[1].EntrepreneurID = dangling
	txs[2].EntrepreneurID = known.ID

	summary := Aggregate(txs, []*entity.Entrepreneur{known}, marchPeriod(t), Options{})

	assert.True(t, summary.Income.Equal(dec("400")))
	assert.True(t, summary.Expenses.Equal(dec("100")))
	assert.True(t, summary.Net.Equal(dec("300")))
	assert.Equal(t, 1, summary.NewEntrepreneurs)
	assert.True(t, summary.AverageTransactionValue.Equal(dec("200")))
	assert.Equal(t, 75.0, summary.ProfitMargin)
	assert.Equal(t, 75.0, summary.CollectionRate)

	require.Len(t, summary.TopEntrepreneurs, 2)
	assert.Equal(t, "Ada's Kitchen", summary.TopEntrepreneurs[0].Name)
	assert.Equal(t, entity.UnknownEntrepreneurName, summary.TopEntrepreneurs[1].Name)

	require.Len(t, summary.TopCustomers, 2)
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "Catering", summary.TopProducts[0].Category)

	again := Aggregate(txs, []*entity.Entrepreneur{known}, marchPeriod(t), Options{})
	assert.Equal(t, summary, again, "aggregation is deterministic")
}

func TestAggregate_Empty(t *testing.T) {
	r, err := ResolvePeriod(RangeAll, day("2024-03-01"))
	require.NoError(t, err)

	summary := Aggregate(nil, nil, r, Options{TopN: 3})

	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expenses.IsZero())
	assert.True(t, summary.Net.IsZero())
	assert.True(t, summary.Outstanding.IsZero())
	assert.True(t, summary.AverageTransactionValue.IsZero())
	assert.Zero(t, summary.CollectionRate)
	assert.Zero(t, summary.FullPaymentRate)
	assert.Zero(t, summary.ProfitMargin)
	assert.Zero(t, summary.NewEntrepreneurs)

	assert.NotNil(t, summary.IncomeByCategory)
	assert.Empty(t, summary.IncomeByCategory)
	assert.NotNil(t, summary.ExpenseByCategory)
	assert.NotNil(t, summary.TopCustomers)
	assert.Empty(t, summary.TopCustomers)
	assert.NotNil(t, summary.TopProducts)
	assert.NotNil(t, summary.TopEntrepreneurs)
}
