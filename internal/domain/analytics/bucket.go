// Package analytics derives period-scoped summaries, chart series, rankings and
// goal progress from a snapshot of the ledger.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizportal/backend/internal/domain/entity"
)

// Granularity is the width of one chart bucket.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// MonthlyBucketThreshold is the range span above which buckets become monthly.
const MonthlyBucketThreshold = 45 * 24 * time.Hour

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// Bucket holds the sums of one day or month.
type Bucket struct {
	Key              string // YYYY-MM-DD or YYYY-MM, sortable
	Label            string
	Income           decimal.Decimal
	Expense          decimal.Decimal
	Net              decimal.Decimal
	TransactionCount int
}

// ComparisonPoint pairs the n-th bucket of the current series with the n-th
// bucket of the previous one.
type ComparisonPoint struct {
	Current  Bucket
	Previous *Bucket
}

// GranularityFor picks daily or monthly buckets for a range.
func GranularityFor(start, end time.Time) Granularity {
	if end.Sub(start) > MonthlyBucketThreshold {
		return GranularityMonthly
	}
	return GranularityDaily
}

// BucketKey returns the bucket key of date for the given granularity.
func BucketKey(date time.Time, granularity Granularity) string {
	if granularity == GranularityMonthly {
		return date.Format("2006-01")
	}
	return entity.FormatDate(date)
}

// BucketLabel formats a bucket label: "Jan 5" for days, "Jan 2024" for months.
func BucketLabel(date time.Time, granularity Granularity) string {
	if granularity == GranularityMonthly {
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	}
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Day())
}

// BucketTransactions groups the transactions inside [start, end] into day or
// month buckets in ascending key order. Buckets without transactions are not emitted.
func BucketTransactions(txs []*entity.Transaction, start, end time.Time) []Bucket {
	granularity := GranularityFor(start, end)
	window := Range{Start: start, End: end}

	index := make(map[string]int)
	buckets := make([]Bucket, 0)

	for _, tx := range txs {
		if !window.Contains(tx.Date) {
			continue
		}

		key := BucketKey(tx.Date, granularity)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{
				Key:     key,
				Label:   BucketLabel(tx.Date, granularity),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
				Net:     decimal.Zero,
			})
		}

		b := &buckets[i]
		if tx.IsIncome() {
			b.Income = b.Income.Add(tx.Amount)
		} else {
			b.Expense = b.Expense.Add(tx.Amount)
		}
		b.Net = b.Income.Sub(b.Expense)
		b.TransactionCount++
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})

	return buckets
}

// CompareSeries aligns two bucket series by position. Current buckets beyond
// the length of the previous series get a nil Previous.
func CompareSeries(current, previous []Bucket) []ComparisonPoint {
	points := make([]ComparisonPoint, 0, len(current))
	for i, b := range current {
		point := ComparisonPoint{Current: b}
		if i < len(previous) {
			prev := previous[i]
			point.Previous = &prev
		}
		points = append(points, point)
	}
	return points
}

// ChartSeries buckets the current window and aligns it with the previous one.
func ChartSeries(txs []*entity.Transaction, current Range, previous *Range) []ComparisonPoint {
	currentBuckets := BucketTransactions(txs, current.Start, current.End)
	var previousBuckets []Bucket
	if previous != nil {
		previousBuckets = BucketTransactions(txs, previous.Start, previous.End)
	}
	return CompareSeries(currentBuckets, previousBuckets)
}
