package data

import (
	"strconv"
	"strings"

	"coal-benchmark/internal/model"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// LoadParamsXLSX reads a parameter sheet laid out as two columns: parameter
// name in column A, numeric value in column B. Rows with a blank name or a
// non-numeric value are skipped.
func LoadParamsXLSX(path, sheet string) (model.Params, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheet)
	}

	params := model.Params{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			continue
		}
		params[key] = value
	}
	return params, nil
}

// BenchmarkMonthly is the contents of a comparison workbook: one benchmark
// column and one column per month, with parameter names down the first
// column.
type BenchmarkMonthly struct {
	Benchmark model.Params
	Months    map[string]model.Params
}

// LoadBenchmarkMonthlyXLSX reads a comparison table. The header row names the
// columns: the first cell is ignored, the second must be the benchmark
// column, and every following cell labels a month. Data rows carry the
// parameter name and then one numeric value per column; blanks and
// non-numeric cells are skipped.
func LoadBenchmarkMonthlyXLSX(path, sheet string) (*BenchmarkMonthly, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheet)
	}
	if len(rows) < 2 || len(rows[0]) < 3 {
		return nil, errors.Errorf("sheet %s: need a header row with benchmark and month columns", sheet)
	}

	header := rows[0]
	out := &BenchmarkMonthly{
		Benchmark: model.Params{},
		Months:    make(map[string]model.Params, len(header)-2),
	}
	for _, name := range header[2:] {
		name = strings.TrimSpace(name)
		if name != "" {
			out.Months[name] = model.Params{}
		}
	}

	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64); err == nil {
			out.Benchmark[key] = v
		}
		for col := 2; col < len(row) && col < len(header); col++ {
			month := strings.TrimSpace(header[col])
			if month == "" {
				continue
			}
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64); err == nil {
				out.Months[month][key] = v
			}
		}
	}
	return out, nil
}
