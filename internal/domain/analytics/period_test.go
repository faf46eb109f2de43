package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/bizportal/backend/internal/domain/error"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC)

	t.Run("bounded ranges include today", func(t *testing.T) {
		r, err := ResolvePeriod(Range7Days, now)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, time.March, 20, 23, 59, 59, int(999*time.Millisecond), time.UTC), r.End)
		assert.Equal(t, "Last 7 days", r.Label())
	})

	t.Run("30 and 90 days", func(t *testing.T) {
		r30, err := ResolvePeriod(Range30Days, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC), r30.Start)

		r90, err := ResolvePeriod(Range90Days, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.December, 22, 0, 0, 0, 0, time.UTC), r90.Start)
	})

	t.Run("all starts at the epoch", func(t *testing.T) {
		r, err := ResolvePeriod(RangeAll, now)
		require.NoError(t, err)
		assert.Equal(t, int64(0), r.Start.Unix())
		assert.True(t, r.Contains(day("1999-01-01")))
		assert.False(t, r.Contains(day("2024-03-21")))
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ResolvePeriod(RangeKey("14d"), now)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerror.ErrInvalidRangeKey))
	})
}

func TestResolvePreviousPeriod(t *testing.T) {
	now := time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC)

	t.Run("mirrors the current window", func(t *testing.T) {
		current, err := ResolvePeriod(Range7Days, now)
		require.NoError(t, err)

		prev, ok, err := ResolvePreviousPeriod(Range7Days, current.Start, now)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, current.Start.Add(-time.Millisecond), prev.End)
		assert.Equal(t, prev.End.Add(-now.Sub(current.Start)), prev.Start)

		assert.True(t, prev.Contains(day("2024-03-07")))
		assert.True(t, prev.Contains(day("2024-03-13")))
		assert.False(t, prev.Contains(day("2024-03-06")))
		assert.False(t, prev.Contains(day("2024-03-14")))
	})

	t.Run("all has no previous period", func(t *testing.T) {
		current, err := ResolvePeriod(RangeAll, now)
		require.NoError(t, err)

		_, ok, err := ResolvePreviousPeriod(RangeAll, current.Start, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestParseRangeKey(t *testing.T) {
	for _, value := range []string{"7d", "30d", "90d", "all", " ALL "} {
		_, err := ParseRangeKey(value)
		assert.NoError(t, err, value)
	}

	_, err := ParseRangeKey("yesterday")
	var analyticsErr *domainerror.AnalyticsError
	require.True(t, errors.As(err, &analyticsErr))
	assert.Equal(t, domainerror.ErrCodeInvalidRangeKey, analyticsErr.Code)
}

func TestParseExplicitPeriod(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		monthly bool
		label   string
		wantErr bool
	}{
		{name: "month", value: "2024-03", monthly: true, label: "March 2024"},
		{name: "year", value: "2024", label: "2024"},
		{name: "month out of range", value: "2024-13", wantErr: true},
		{name: "month zero", value: "2024-00", wantErr: true},
		{name: "full date", value: "2024-03-01", wantErr: true},
		{name: "garbage", value: "March", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseExplicitPeriod(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerror.ErrInvalidExplicitPeriod))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.monthly, p.IsMonthly())
			assert.Equal(t, tt.label, p.Label())
		})
	}
}

func TestExplicitPeriod_Contains(t *testing.T) {
	march, err := ParseExplicitPeriod("2024-03")
	require.NoError(t, err)

	assert.True(t, march.Contains(day("2024-03-01")))
	assert.True(t, march.Contains(day("2024-03-31")))
	assert.False(t, march.Contains(day("2024-04-01")))

	year, err := ParseExplicitPeriod("2024")
	require.NoError(t, err)
	assert.True(t, year.Contains(day("2024-12-31")))
	assert.False(t, year.Contains(day("2023-12-31")))

	bounds := march.Bounds()
	assert.Equal(t, day("2024-03-01"), bounds.Start)
	assert.Equal(t, day("2024-04-01").Add(-time.Millisecond), bounds.End)
}

func TestRange_ContainsUsesCalendarDays(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2024, time.March, 20, 22, 0, 0, 0, loc)

	r, err := ResolvePeriod(Range7Days, now)
	require.NoError(t, err)

	assert.True(t, r.Contains(day("2024-03-14")))
	assert.True(t, r.Contains(day("2024-03-20")))
	assert.False(t, r.Contains(day("2024-03-13")))
}

func TestResolveRanges(t *testing.T) {
	now := time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC)

	current, previous, err := ResolveRanges("7d", now)
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, Range7Days, current.Key)
	assert.True(t, previous.Contains(time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, previous.Contains(time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC)))
	assert.False(t, previous.Contains(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)))

	_, previous, err = ResolveRanges("all", now)
	require.NoError(t, err)
	assert.Nil(t, previous)

	_, _, err = ResolveRanges("1y", now)
	assert.True(t, errors.Is(err, domainerror.ErrInvalidRangeKey))
}
