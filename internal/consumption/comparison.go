package consumption

import (
	"coal-benchmark/internal/correction"
	"coal-benchmark/internal/model"
)

// Observation keys used by benchmark/monthly comparison tables. These are the
// raw readings recorded per month, before they are mapped onto base/actual
// parameter pairs.
const (
	ObsUnitLoad         = "unit_load"          // % of rated load
	ObsLocalTemperature = "local_temperature"  // degrees C
	ObsSeaTemperature   = "sea_temperature"    // degrees C
	ObsCalorificValue   = "coal_heat_value"    // kcal/kg
	ObsElectricity      = "electricity_output" // MWh
)

// ParamComparison is the per-key delta between a month and the benchmark.
type ParamComparison struct {
	Benchmark  float64 `json:"benchmark"`
	Monthly    float64 `json:"monthly"`
	Difference float64 `json:"difference"` // monthly - benchmark
	Ratio      float64 `json:"ratio"`      // monthly / benchmark, 1.0 when benchmark is 0
}

// MonthComparison holds one month's raw data and its per-key comparisons.
type MonthComparison struct {
	Data        model.Params               `json:"monthly_data"`
	Comparisons map[string]ParamComparison `json:"comparisons"`
}

// ComparisonResult is the benchmark data plus every month's comparison.
type ComparisonResult struct {
	Benchmark model.Params               `json:"benchmark"`
	Months    map[string]MonthComparison `json:"monthly_comparisons"`
}

// MonthlyRates holds the benchmark consumption rate and the rate recomputed
// for each month's observed conditions.
type MonthlyRates struct {
	Benchmark float64            `json:"benchmark_coal_consumption"` // g/kWh
	Monthly   map[string]float64 `json:"monthly_coal_consumption"`   // month name -> g/kWh
}

// CompareWithBenchmark computes the difference and ratio against the
// benchmark for every key the benchmark and a month have in common.
func (c *Calculator) CompareWithBenchmark(benchmark model.Params,
	monthly map[string]model.Params) ComparisonResult {
	out := ComparisonResult{
		Benchmark: benchmark.Clone(),
		Months:    make(map[string]MonthComparison, len(monthly)),
	}

	for month, data := range monthly {
		mc := MonthComparison{
			Data:        data.Clone(),
			Comparisons: make(map[string]ParamComparison),
		}
		for key, monthValue := range data {
			benchValue, ok := benchmark[key]
			if !ok {
				continue
			}
			mc.Comparisons[key] = ParamComparison{
				Benchmark:  benchValue,
				Monthly:    monthValue,
				Difference: monthValue - benchValue,
				Ratio:      correction.SafeDivide(monthValue, benchValue, 1.0),
			}
		}
		out.Months[month] = mc
	}
	return out
}

// MonthlyConsumption computes the benchmark rate and each month's rate by
// substituting the month's observed load, temperatures and coal heat value
// onto the benchmark's baseline conditions.
func (c *Calculator) MonthlyConsumption(benchmark model.Params,
	monthly map[string]model.Params, settings model.CalcSettings) MonthlyRates {
	benchParams := comparisonParams(benchmark, benchmark)
	out := MonthlyRates{
		Benchmark: c.Benchmark(benchParams, settings).Benchmark,
		Monthly:   make(map[string]float64, len(monthly)),
	}
	for month, data := range monthly {
		res := c.Benchmark(comparisonParams(benchmark, data), settings)
		out.Monthly[month] = res.Benchmark
	}
	return out
}

// comparisonParams builds a calculation parameter set whose baselines come
// from the benchmark observations and whose actuals come from the month's;
// any observation the month lacks falls back to the benchmark value.
func comparisonParams(benchmark, month model.Params) model.Params {
	baseLoad := benchmark.Get(ObsUnitLoad, 100)
	baseTemp := benchmark.Get(ObsLocalTemperature, 25)
	baseSea := benchmark.Get(ObsSeaTemperature, 19)
	baseCalorific := benchmark.Get(ObsCalorificValue, 4854)

	return model.Params{
		model.KeyBaseLoad:           baseLoad,
		model.KeyBaseTemperature:    baseTemp,
		model.KeyBaseSeaTemperature: baseSea,
		model.KeyCoalCalorificValue: baseCalorific,
		model.KeyActualLoad:         month.Get(ObsUnitLoad, baseLoad),
		model.KeyActualTemperature:  month.Get(ObsLocalTemperature, baseTemp),
		model.KeyActualSeaTemp:      month.Get(ObsSeaTemperature, baseSea),
		model.KeyActualCalorific:    month.Get(ObsCalorificValue, baseCalorific),
		model.KeyElectricityOutput:  month.Get(ObsElectricity, 1000),
	}
}
