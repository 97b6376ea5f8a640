package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Summary
	}{
		{
			name:   "empty input",
			values: nil,
			want:   Summary{},
		},
		{
			name:   "single value",
			values: []float64{-85.5},
			want:   Summary{Count: 1, Mean: -85.5, Min: -85.5, Max: -85.5, StdDev: 0},
		},
		{
			name:   "identical values",
			values: []float64{3, 3, 3, 3},
			want:   Summary{Count: 4, Mean: 3, Min: 3, Max: 3, StdDev: 0},
		},
		{
			name:   "mixed values",
			values: []float64{2, 4, 4, 4, 5, 5, 7, 9},
			want:   Summary{Count: 8, Mean: 5, Min: 2, Max: 9, StdDev: 2.138089935299395},
		},
		{
			name:   "negative values",
			values: []float64{-100, -90, -80},
			want:   Summary{Count: 3, Mean: -90, Min: -100, Max: -80, StdDev: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.values)

			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-9)
			assert.InDelta(t, tt.want.Min, got.Min, 1e-9)
			assert.InDelta(t, tt.want.Max, got.Max, 1e-9)
			assert.InDelta(t, tt.want.StdDev, got.StdDev, 1e-9)
		})
	}
}

func TestDescribe_MeanWithinRange(t *testing.T) {
	samples := [][]float64{
		{-120.5, -80.2, -95.1, -101.7},
		{0.001, 4.2, 3.9},
		{50},
		{1000, -1000},
	}

	for _, values := range samples {
		s := Describe(values)
		assert.GreaterOrEqual(t, s.Mean, s.Min)
		assert.LessOrEqual(t, s.Mean, s.Max)
	}
}

func TestSummary_Empty(t *testing.T) {
	assert.True(t, Summary{}.Empty())
	assert.False(t, Describe([]float64{1}).Empty())
}
