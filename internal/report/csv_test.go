package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"coal-benchmark/internal/consumption"
	"coal-benchmark/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteResultCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")
	res := consumption.Result{
		Basic:         183.1,
		Benchmark:     196.8,
		Comprehensive: 1.075,
		TotalFactor:   1.075,
		Factors: map[string]float64{
			model.CorrLoadFactor:  1.075,
			model.CorrTemperature: 1.0,
		},
	}
	require.NoError(t, WriteResultCSV(path, res))

	rows := readCSV(t, path)
	require.Equal(t, []string{"metric", "value"}, rows[0])
	assert.Equal(t, "basic_coal_consumption", rows[1][0])
	assert.Equal(t, "183.100000", rows[1][1])
	// four summary rows plus one row per factor present
	assert.Len(t, rows, 1+4+2)
}

func TestWriteSensitivityCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	points := []consumption.SweepPoint{
		{Value: 50, Consumption: 211.4},
		{Value: 100, Consumption: 183.1},
	}
	require.NoError(t, WriteSensitivityCSV(path, model.KeyActualLoad, points))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{model.KeyActualLoad, "benchmark_coal_consumption"}, rows[0])
	assert.Equal(t, "50.000000", rows[1][0])
}

func TestWriteModesCSV_OrderedByMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modes.csv")
	modes := map[consumption.Mode]consumption.Result{
		consumption.ModeLow:    {Basic: 180, Benchmark: 207, Comprehensive: 1.15},
		consumption.ModeNormal: {Basic: 180, Benchmark: 180, Comprehensive: 1.0},
	}
	require.NoError(t, WriteModesCSV(path, modes))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, string(consumption.ModeNormal), rows[1][0])
	assert.Equal(t, string(consumption.ModeLow), rows[2][0])
}

func TestWriteComparisonCSV_SortedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare.csv")
	cmp := consumption.ComparisonResult{
		Months: map[string]consumption.MonthComparison{
			"february": {Comparisons: map[string]consumption.ParamComparison{
				"unit_load": {Benchmark: 100, Monthly: 60, Difference: -40, Ratio: 0.6},
			}},
			"january": {Comparisons: map[string]consumption.ParamComparison{
				"unit_load":       {Benchmark: 100, Monthly: 95, Difference: -5, Ratio: 0.95},
				"coal_heat_value": {Benchmark: 4854, Monthly: 4800, Difference: -54, Ratio: 0.988875},
			}},
		},
	}
	require.NoError(t, WriteComparisonCSV(path, cmp))

	rows := readCSV(t, path)
	require.Len(t, rows, 4)
	assert.Equal(t, "february", rows[1][0])
	assert.Equal(t, "january", rows[2][0])
	assert.Equal(t, "coal_heat_value", rows[2][1], "parameters sorted within a month")
	assert.Equal(t, "unit_load", rows[3][1])
}

func TestRenderResult_IncludesFactors(t *testing.T) {
	res := consumption.Result{
		Basic:         183.1,
		Benchmark:     196.8,
		Comprehensive: 1.075,
		Factors:       map[string]float64{model.CorrLoadFactor: 1.075},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderResult(&buf, res, 2))
	out := buf.String()
	assert.Contains(t, out, "benchmark coal consumption")
	assert.Contains(t, out, "196.80")
	assert.Contains(t, out, model.CorrLoadFactor)
}
