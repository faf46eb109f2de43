// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// DateLayout is the ISO calendar-date layout used for ledger dates on the wire and in storage.
const DateLayout = "2006-01-02"

// ParseLedgerDate parses a YYYY-MM-DD string into a calendar date at midnight UTC.
// Anything else, including timestamps, is rejected.
func ParseLedgerDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	date, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return time.Time{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"invalid date format, expected YYYY-MM-DD: "+trimmed,
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return date, nil
}

// ParseAmount parses a decimal amount. Non-numeric and negative values are rejected.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be numeric: "+value,
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if amount.IsNegative() {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return amount, nil
}

// NormalizeDate drops the time-of-day and location, keeping the calendar day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
