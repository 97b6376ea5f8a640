// Package stats computes descriptive statistics over numeric samples.
package stats

import "math"

// Summary holds descriptive statistics for a sample of float64 values.
// A zero-value Summary (Count == 0) means the input was empty.
type Summary struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64 // sample standard deviation, 0 for fewer than 2 values
}

// Empty reports whether the summary was computed from an empty sample.
func (s Summary) Empty() bool {
	return s.Count == 0
}

// Describe computes count, mean, min, max and sample standard deviation.
// An empty input yields the zero-value Summary rather than an error so
// callers can render "no data" sections without special-casing.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sum := 0.0
	minV := values[0]
	maxV := values[0]

	for _, v := range values {
		sum += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	mean := sum / float64(len(values))

	stddev := 0.0
	if len(values) > 1 {
		sqSum := 0.0
		for _, v := range values {
			d := v - mean
			sqSum += d * d
		}
		stddev = math.Sqrt(sqSum / float64(len(values)-1))
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		Min:    minV,
		Max:    maxV,
		StdDev: stddev,
	}
}
