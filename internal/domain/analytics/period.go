// Package analytics derives period-scoped summaries, chart series, rankings and
// goal progress from a snapshot of the ledger. Every function is pure: inputs
// are treated as an immutable snapshot and "now" is always passed explicitly.
package analytics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
)

// RangeKey names a rolling range ending today.
type RangeKey string

const (
	Range7Days  RangeKey = "7d"
	Range30Days RangeKey = "30d"
	Range90Days RangeKey = "90d"
	RangeAll    RangeKey = "all"
)

// rangeDays holds the width in calendar days of each bounded range.
var rangeDays = map[RangeKey]int{
	Range7Days:  7,
	Range30Days: 30,
	Range90Days: 90,
}

var rangeLabels = map[RangeKey]string{
	Range7Days:  "Last 7 days",
	Range30Days: "Last 30 days",
	Range90Days: "Last 90 days",
	RangeAll:    "All time",
}

var explicitPeriodPattern = regexp.MustCompile(`^\d{4}(-\d{2})?$`)

// Period filters ledger dates.
type Period interface {
	// Contains reports whether the calendar day of date falls inside the period.
	Contains(date time.Time) bool
	// Label is a human-readable description of the period.
	Label() string
}

// Range is an inclusive instant range. Containment is decided on calendar days,
// so a date on the day of Start or End is always inside.
type Range struct {
	Key   RangeKey
	Start time.Time
	End   time.Time
}

// Contains implements Period.
func (r Range) Contains(date time.Time) bool {
	day := calendarDay(date)
	return !day.Before(calendarDay(r.Start)) && !day.After(calendarDay(r.End))
}

// Label implements Period.
func (r Range) Label() string {
	if label, ok := rangeLabels[r.Key]; ok {
		return label
	}
	return fmt.Sprintf("%s to %s", entity.FormatDate(calendarDay(r.Start)), entity.FormatDate(calendarDay(r.End)))
}

// Span returns the width of the range.
func (r Range) Span() time.Duration {
	return r.End.Sub(r.Start)
}

// ParseRangeKey validates a range key coming from a request.
func ParseRangeKey(value string) (RangeKey, error) {
	key := RangeKey(strings.ToLower(strings.TrimSpace(value)))
	if key == RangeAll {
		return key, nil
	}
	if _, ok := rangeDays[key]; ok {
		return key, nil
	}
	return "", domainerror.NewAnalyticsError(
		domainerror.ErrCodeInvalidRangeKey,
		"unknown range: "+value,
		domainerror.ErrInvalidRangeKey,
	)
}

// ResolvePeriod resolves a named range relative to now.
// Bounded ranges span N calendar days including today; "all" starts at the Unix epoch.
func ResolvePeriod(key RangeKey, now time.Time) (Range, error) {
	end := endOfDay(now)

	if key == RangeAll {
		return Range{Key: key, Start: time.Unix(0, 0).In(now.Location()), End: end}, nil
	}

	days, ok := rangeDays[key]
	if !ok {
		return Range{}, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidRangeKey,
			"unknown range: "+string(key),
			domainerror.ErrInvalidRangeKey,
		)
	}

	start := startOfDay(now).AddDate(0, 0, -(days - 1))
	return Range{Key: key, Start: start, End: end}, nil
}

// ResolvePreviousPeriod returns the window of identical length immediately
// preceding currentStart. The second value is false for "all", which has no
// previous period.
func ResolvePreviousPeriod(key RangeKey, currentStart, now time.Time) (Range, bool, error) {
	if key == RangeAll {
		return Range{}, false, nil
	}
	if _, ok := rangeDays[key]; !ok {
		return Range{}, false, domainerror.NewAnalyticsError(
			domainerror.ErrCodeInvalidRangeKey,
			"unknown range: "+string(key),
			domainerror.ErrInvalidRangeKey,
		)
	}

	prevEnd := currentStart.Add(-time.Millisecond)
	prevStart := prevEnd.Add(-now.Sub(currentStart))
	return Range{Start: prevStart, End: prevEnd}, true, nil
}

// ExplicitPeriod is a calendar month (YYYY-MM) or year (YYYY) used by reports.
// It matches dates by prefix of their ISO form and has no previous period.
type ExplicitPeriod struct {
	Prefix string
	Year   int
	Month  time.Month // zero for a yearly period
}

// ParseExplicitPeriod parses "YYYY" or "YYYY-MM".
func ParseExplicitPeriod(value string) (ExplicitPeriod, error) {
	trimmed := strings.TrimSpace(value)
	invalid := domainerror.NewAnalyticsError(
		domainerror.ErrCodeInvalidExplicitPeriod,
		"invalid period: "+value,
		domainerror.ErrInvalidExplicitPeriod,
	)

	if !explicitPeriodPattern.MatchString(trimmed) {
		return ExplicitPeriod{}, invalid
	}

	year, _ := strconv.Atoi(trimmed[:4])
	period := ExplicitPeriod{Prefix: trimmed, Year: year}
	if len(trimmed) == 4 {
		return period, nil
	}

	month, _ := strconv.Atoi(trimmed[5:])
	if month < 1 || month > 12 {
		return ExplicitPeriod{}, invalid
	}
	period.Month = time.Month(month)
	return period, nil
}

// IsMonthly reports whether the period is a single calendar month.
func (p ExplicitPeriod) IsMonthly() bool {
	return p.Month != 0
}

// Contains implements Period.
func (p ExplicitPeriod) Contains(date time.Time) bool {
	return strings.HasPrefix(entity.FormatDate(date), p.Prefix)
}

// Label implements Period.
func (p ExplicitPeriod) Label() string {
	if p.IsMonthly() {
		return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
	}
	return strconv.Itoa(p.Year)
}

// Bounds returns the first and last instant of the period in UTC.
func (p ExplicitPeriod) Bounds() Range {
	if p.IsMonthly() {
		start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
		return Range{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Millisecond)}
	}
	start := time.Date(p.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Range{Start: start, End: start.AddDate(1, 0, 0).Add(-time.Millisecond)}
}

// MonthOf returns the monthly explicit period containing date.
func MonthOf(date time.Time) ExplicitPeriod {
	return ExplicitPeriod{
		Prefix: date.Format("2006-01"),
		Year:   date.Year(),
		Month:  date.Month(),
	}
}

// FilterTransactions returns the transactions whose date falls inside period,
// preserving input order.
func FilterTransactions(txs []*entity.Transaction, period Period) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(txs))
	for _, tx := range txs {
		if period.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// calendarDay maps t to midnight UTC of its calendar day in t's own location.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveRanges parses a range key and resolves the current window with its
// previous one. previous is nil for "all".
func ResolveRanges(value string, now time.Time) (current Range, previous *Range, err error) {
	key, err := ParseRangeKey(value)
	if err != nil {
		return Range{}, nil, err
	}

	current, err = ResolvePeriod(key, now)
	if err != nil {
		return Range{}, nil, err
	}

	prev, ok, err := ResolvePreviousPeriod(key, current.Start, now)
	if err != nil {
		return Range{}, nil, err
	}
	if !ok {
		return current, nil, nil
	}
	return current, &prev, nil
}
