package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/domain/entity"
)

func TestGranularityFor(t *testing.T) {
	start := day("2024-01-01")

	assert.Equal(t, GranularityDaily, GranularityFor(start, start.Add(45*24*time.Hour)))
	assert.Equal(t, GranularityMonthly, GranularityFor(start, start.Add(45*24*time.Hour+time.Millisecond)))
}

func TestBucketTransactions_Daily(t *testing.T) {
	start := day("2024-03-01")
	end := day("2024-03-10").Add(24*time.Hour - time.Millisecond)

	txs := []*entity.Transaction{
		income("2024-03-05", "100"),
		expense("2024-03-02", "40"),
		income("2024-03-05", "50"),
		income("2024-03-01", "10"), // on start
		income("2024-03-10", "20"), // on end
		income("2024-02-29", "999"),
		income("2024-03-11", "999"),
	}

	buckets := BucketTransactions(txs, start, end)
	require.Len(t, buckets, 4)

	keys := []string{buckets[0].Key, buckets[1].Key, buckets[2].Key, buckets[3].Key}
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-05", "2024-03-10"}, keys)

	assert.Equal(t, "Mar 5", buckets[2].Label)
	assert.True(t, buckets[2].Income.Equal(dec("150")))
	assert.Equal(t, 2, buckets[2].TransactionCount)

	assert.True(t, buckets[1].Expense.Equal(dec("40")))
	assert.True(t, buckets[1].Net.Equal(dec("-40")))
}

func TestBucketTransactions_Monthly(t *testing.T) {
	start := day("2024-01-01")
	end := day("2024-03-31")

	txs := []*entity.Transaction{
		income("2024-03-05", "100"),
		expense("2024-01-20", "30"),
		income("2024-01-02", "80"),
	}

	buckets := BucketTransactions(txs, start, end)
	require.Len(t, buckets, 2, "February has no transactions and is not zero-filled")

	assert.Equal(t, "2024-01", buckets[0].Key)
	assert.Equal(t, "Jan 2024", buckets[0].Label)
	assert.True(t, buckets[0].Net.Equal(dec("50")))
	assert.Equal(t, "2024-03", buckets[1].Key)
}

func TestBucketTransactions_Empty(t *testing.T) {
	buckets := BucketTransactions(nil, day("2024-01-01"), day("2024-01-07"))
	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestCompareSeries(t *testing.T) {
	current := []Bucket{{Key: "2024-03-01"}, {Key: "2024-03-02"}}
	previous := []Bucket{{Key: "2024-02-23"}}

	points := CompareSeries(current, previous)
	require.Len(t, points, 2)
	require.NotNil(t, points[0].Previous)
	assert.Equal(t, "2024-02-23", points[0].Previous.Key)
	assert.Nil(t, points[1].Previous)
}

func TestChartSeries(t *testing.T) {
	current := Range{Start: day("2024-03-08"), End: day("2024-03-14")}
	previous := &Range{Start: day("2024-03-01"), End: day("2024-03-07")}

	txs := []*entity.Transaction{
		income("2024-03-02", "10"),
		income("2024-03-09", "30"),
		expense("2024-03-12", "5"),
	}

	points := ChartSeries(txs, current, previous)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-03-09", points[0].Current.Key)
	require.NotNil(t, points[0].Previous)
	assert.Equal(t, "2024-03-02", points[0].Previous.Key)
	assert.Nil(t, points[1].Previous)

	points = ChartSeries(txs, current, nil)
	require.Len(t, points, 2)
	assert.Nil(t, points[0].Previous)
}
