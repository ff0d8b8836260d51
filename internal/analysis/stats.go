// Package analysis summarizes series of benchmark consumption rates for
// reporting: spread statistics over a year of monthly results and month
// rankings.
package analysis

import (
	"math"
	"sort"

	"coal-benchmark/internal/consumption"
)

// RateSummary is a spread summary of monthly benchmark rates. All values in
// g/kWh except Count.
type RateSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P05    float64 `json:"p05"`
	P95    float64 `json:"p95"`
}

// Summarize computes spread statistics over the monthly results of an annual
// calculation. The result is independent of the order months were supplied.
func Summarize(monthly []consumption.Result) RateSummary {
	s := RateSummary{}
	if len(monthly) == 0 {
		return s
	}
	s.Count = len(monthly)

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(monthly))
	for _, r := range monthly {
		v := r.Benchmark
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	s.Min = minv
	s.Max = maxv
	s.Mean = sum / float64(len(vals))
	s.StdDev = stdDev(vals, s.Mean)
	s.P05 = percentileSorted(vals, 0.05)
	s.P95 = percentileSorted(vals, 0.95)
	return s
}

// stdDev is the sample standard deviation; zero for fewer than two values.
func stdDev(vals []float64, mean float64) float64 {
	if len(vals) <= 1 {
		return 0
	}
	variance := 0.0
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(vals) - 1)
	return math.Sqrt(variance)
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
