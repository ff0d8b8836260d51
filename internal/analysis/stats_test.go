package analysis

import (
	"testing"

	"coal-benchmark/internal/consumption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(rates ...float64) []consumption.Result {
	out := make([]consumption.Result, len(rates))
	for i, r := range rates {
		out[i] = consumption.Result{Benchmark: r}
	}
	return out
}

func TestSummarize_Basics(t *testing.T) {
	s := Summarize(results(190, 200, 210))
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 190.0, s.Min)
	assert.Equal(t, 210.0, s.Max)
	assert.InDelta(t, 200.0, s.Mean, 1e-12)
	assert.InDelta(t, 10.0, s.StdDev, 1e-9, "sample stddev of 190/200/210 is 10")
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Count)
	assert.Zero(t, s.Mean)
}

func TestSummarize_SingleValue(t *testing.T) {
	s := Summarize(results(195))
	assert.Equal(t, 1, s.Count)
	assert.Zero(t, s.StdDev)
	assert.Equal(t, 195.0, s.P05)
	assert.Equal(t, 195.0, s.P95)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	a := Summarize(results(180, 220, 195, 205))
	b := Summarize(results(205, 195, 220, 180))
	assert.Equal(t, a, b)
}

func TestRankMonthsByRate(t *testing.T) {
	ranked := RankMonthsByRate(map[string]float64{
		"march":    205,
		"january":  198,
		"february": 201,
	})
	require.Len(t, ranked, 3)
	assert.Equal(t, RankedMonth{Rank: 1, Month: "january", Rate: 198}, ranked[0])
	assert.Equal(t, RankedMonth{Rank: 2, Month: "february", Rate: 201}, ranked[1])
	assert.Equal(t, RankedMonth{Rank: 3, Month: "march", Rate: 205}, ranked[2])
}

func TestRankMonthsByRate_TiesBreakOnName(t *testing.T) {
	ranked := RankMonthsByRate(map[string]float64{"b": 200, "a": 200})
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Month)
	assert.Equal(t, "b", ranked[1].Month)
}
