// Package analytics derives period-scoped summaries, chart series, rankings and
// goal progress from a snapshot of the ledger.
package analytics

import "github.com/shopspring/decimal"

// Direction is the sentiment of a change between two periods.
type Direction string

const (
	DirectionImproving  Direction = "improving"
	DirectionRegressing Direction = "regressing"
	DirectionFlat       Direction = "flat"
)

// Comparison is the change of a metric between the previous and the current period.
type Comparison struct {
	Current       decimal.Decimal
	Previous      decimal.Decimal
	PercentChange float64
	Direction     Direction
}

var hundred = decimal.NewFromInt(100)

// Trend computes the signed percentage change from previous to current.
//
// A zero baseline is resolved by convention rather than as infinite growth:
// 0 to a positive value is +100, 0 to a negative value is -100 and 0 to 0 is 0.
// For lowerIsBetter metrics such as expenses a decrease is an improvement.
func Trend(current, previous decimal.Decimal, lowerIsBetter bool) Comparison {
	var change decimal.Decimal
	switch {
	case !previous.IsZero():
		change = current.Sub(previous).Div(previous.Abs()).Mul(hundred)
	case current.IsPositive():
		change = hundred
	case current.IsNegative():
		change = hundred.Neg()
	default:
		change = decimal.Zero
	}

	percent := change.Round(2).InexactFloat64()

	direction := DirectionFlat
	switch {
	case percent > 0 && !lowerIsBetter, percent < 0 && lowerIsBetter:
		direction = DirectionImproving
	case percent != 0:
		direction = DirectionRegressing
	}

	return Comparison{
		Current:       current,
		Previous:      previous,
		PercentChange: percent,
		Direction:     direction,
	}
}

// TrendCount is Trend for counters.
func TrendCount(current, previous int, lowerIsBetter bool) Comparison {
	return Trend(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)), lowerIsBetter)
}
