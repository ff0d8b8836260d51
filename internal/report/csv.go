// Package report renders calculation results for external consumers: CSV
// files for tabular export and a fixed-width text view for terminals. It
// reads plain numerics only; no calculation happens here.
package report

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"coal-benchmark/internal/consumption"
	"coal-benchmark/internal/model"
)

// WriteResultCSV writes one calculation result as a two-column metric/value
// table, corrections included for audit.
func WriteResultCSV(path string, res consumption.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	rows := [][]string{
		{"basic_coal_consumption", fmtFloat(res.Basic)},
		{"benchmark_coal_consumption", fmtFloat(res.Benchmark)},
		{"comprehensive_factor", fmtFloat(res.Comprehensive)},
		{"total_correction_factor", fmtFloat(res.TotalFactor)},
	}
	for _, name := range model.CorrectionNames {
		if v, ok := res.Factors[name]; ok {
			rows = append(rows, []string{name, fmtFloat(v)})
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteSensitivityCSV writes a sweep as (variable value, consumption) rows.
func WriteSensitivityCSV(path, variable string, points []consumption.SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{variable, "benchmark_coal_consumption"}); err != nil {
		return err
	}
	for _, pt := range points {
		if err := w.Write([]string{fmtFloat(pt.Value), fmtFloat(pt.Consumption)}); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteModesCSV writes the per-mode benchmark figures.
func WriteModesCSV(path string, modes map[consumption.Mode]consumption.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"mode", "basic_coal_consumption", "benchmark_coal_consumption", "comprehensive_factor"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, mode := range consumption.AllModes {
		res, ok := modes[mode]
		if !ok {
			continue
		}
		row := []string{
			string(mode),
			fmtFloat(res.Basic),
			fmtFloat(res.Benchmark),
			fmtFloat(res.Comprehensive),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteComparisonCSV flattens a benchmark-vs-monthly comparison into one row
// per (month, parameter) pair.
func WriteComparisonCSV(path string, cmp consumption.ComparisonResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"month", "parameter", "benchmark", "monthly", "difference", "ratio"}
	if err := w.Write(header); err != nil {
		return err
	}

	months := make([]string, 0, len(cmp.Months))
	for m := range cmp.Months {
		months = append(months, m)
	}
	sort.Strings(months)

	for _, month := range months {
		mc := cmp.Months[month]
		keys := make([]string, 0, len(mc.Comparisons))
		for k := range mc.Comparisons {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			pc := mc.Comparisons[key]
			row := []string{
				month,
				key,
				fmtFloat(pc.Benchmark),
				fmtFloat(pc.Monthly),
				fmtFloat(pc.Difference),
				fmtFloat(pc.Ratio),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
