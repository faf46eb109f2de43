package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		previous      string
		lowerIsBetter bool
		wantPercent   float64
		wantDirection Direction
	}{
		{name: "growth", current: "150", previous: "100", wantPercent: 50, wantDirection: DirectionImproving},
		{name: "decline", current: "100", previous: "150", wantPercent: -33.33, wantDirection: DirectionRegressing},
		{name: "growth from zero", current: "50", previous: "0", wantPercent: 100, wantDirection: DirectionImproving},
		{name: "zero to zero", current: "0", previous: "0", wantPercent: 0, wantDirection: DirectionFlat},
		{name: "unchanged", current: "80", previous: "80", wantPercent: 0, wantDirection: DirectionFlat},
		{name: "expenses down", current: "50", previous: "100", lowerIsBetter: true, wantPercent: -50, wantDirection: DirectionImproving},
		{name: "expenses up", current: "150", previous: "100", lowerIsBetter: true, wantPercent: 50, wantDirection: DirectionRegressing},
		{name: "negative baseline", current: "-50", previous: "-100", wantPercent: 50, wantDirection: DirectionImproving},
		{name: "loss from zero", current: "-20", previous: "0", wantPercent: -100, wantDirection: DirectionRegressing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trend(dec(tt.current), dec(tt.previous), tt.lowerIsBetter)
			assert.InDelta(t, tt.wantPercent, got.PercentChange, 0.001)
			assert.Equal(t, tt.wantDirection, got.Direction)
		})
	}
}

func TestTrendCount(t *testing.T) {
	got := TrendCount(3, 2, false)
	assert.InDelta(t, 50.0, got.PercentChange, 0.001)
	assert.Equal(t, DirectionImproving, got.Direction)
}
