// Package consumption turns a parameter set into benchmark coal-consumption
// figures: the basic theoretical rate, the correction-adjusted benchmark
// rate, and the derived heating, operation-mode, annual and sensitivity
// reports built on top of them.
package consumption

import (
	"coal-benchmark/internal/correction"
	"coal-benchmark/internal/model"
)

// Unit constants.
const (
	kcalToKJ = 4.1868  // kJ per kcal
	kWhInKJ  = 3600    // kJ per kWh
	gjToKJ   = 1000000 // kJ per GJ
	mwhToGJ  = 3.6     // GJ per MWh
)

// Bounds on reportable rates (g/kWh).
var (
	basicBand    = model.Range{Min: 80, Max: 250}
	combinedBand = model.Range{Min: 80, Max: 200}
)

// Result bundles the consumption figures for one calculation together with
// every correction factor that produced them.
type Result struct {
	Basic         float64              `json:"basic_coal_consumption"`      // g/kWh before corrections
	Benchmark     float64              `json:"benchmark_coal_consumption"`  // g/kWh after corrections
	Comprehensive float64              `json:"comprehensive_factor"`        // clamped product of enabled factors
	TotalFactor   float64              `json:"total_correction_factor"`     // product excluding the heating credit
	Factors       correction.FactorSet `json:"correction_factors"`
}

// HeatingResult captures the effect of heat extraction on the unit's rate.
type HeatingResult struct {
	PowerOnly     float64 `json:"power_only_coal_consumption"` // g/kWh, generation only
	HeatingCoalKg float64 `json:"heating_coal_consumption"`    // kg of coal attributed to heat supply
	Combined      float64 `json:"combined_coal_consumption"`   // g/kWh after heat/power apportioning
	Impact        float64 `json:"heating_impact"`              // Combined - PowerOnly
}

// CombinedResult is the full combined heat-and-power view: the power-only
// benchmark rate alongside the heating terms and the heat share of total
// energy delivered.
type CombinedResult struct {
	PowerOnly     float64 `json:"power_only_coal_consumption"` // g/kWh, benchmark with heating zeroed
	HeatingCoalKg float64 `json:"heating_coal_consumption"`
	Combined      float64 `json:"combined_coal_consumption"`
	Impact        float64 `json:"heating_impact"`
	HeatingRatio  float64 `json:"heating_ratio"` // heat GJ / (heat GJ + electricity GJ)
}

// Mode labels the synthetic operating conditions evaluated by Modes.
// Keep these values stable; they appear in CSV and JSON output.
type Mode string

const (
	ModeNormal  Mode = "normal"
	ModePeak    Mode = "peak"
	ModeLow     Mode = "low"
	ModeHeating Mode = "heating"
)

// AllModes lists the evaluated modes in report order.
var AllModes = []Mode{ModeNormal, ModePeak, ModeLow, ModeHeating}

// defaultHeatingLoad is the heating load (MW) assumed by the heating mode
// when the caller supplies none.
const defaultHeatingLoad = 50

// SweepPoint is one (variable value, benchmark rate) sample of a sensitivity
// sweep.
type SweepPoint struct {
	Value       float64 `json:"value"`
	Consumption float64 `json:"consumption"` // g/kWh
}

// AnnualResult aggregates monthly benchmark calculations into annual totals.
// The annual rate is energy-weighted: total coal over total generation, not a
// mean of monthly rates.
type AnnualResult struct {
	Monthly        []Result `json:"monthly_results"`
	ElectricityMWh float64  `json:"annual_electricity_output"`
	CoalTonnes     float64  `json:"annual_coal_consumption"`
	BenchmarkRate  float64  `json:"annual_benchmark_coal_consumption"` // g/kWh
}

// Calculator evaluates consumption figures. It holds no state; every method
// is a deterministic function of its inputs and never mutates them.
type Calculator struct{}

func New() *Calculator { return &Calculator{} }

// Basic computes the theoretical consumption rate in g/kWh from fuel heat
// value (kcal/kg) and boiler efficiency. The rate is per kWh, so it does not
// depend on the output total, except that zero generation reports zero.
func (c *Calculator) Basic(electricityMWh, calorificKcal, efficiency float64) float64 {
	if electricityMWh == 0 {
		return 0.0
	}
	efficiency = model.Range{Min: 0.5, Max: 1.0}.Clamp(efficiency)
	calorificKcal = model.Range{Min: 1000, Max: 8000}.Clamp(calorificKcal)

	calorificKJ := calorificKcal * kcalToKJ
	if calorificKJ <= 0 {
		return 0.0
	}
	grams := float64(kWhInKJ*1000) / (calorificKJ * efficiency)
	return basicBand.Clamp(grams)
}

// Benchmark computes the corrected benchmark rate for the given parameters
// and correction settings.
func (c *Calculator) Benchmark(params model.Params, settings model.CalcSettings) Result {
	p := params.ForCalculation()
	factors := correction.Compute(p, settings)

	basic := c.Basic(
		p[model.KeyElectricityOutput],
		p[model.KeyCoalCalorificValue],
		p[model.KeyEfficiency],
	)

	// Factor product excluding the heating credit, for reporting how far
	// operating conditions alone move the rate.
	total := 1.0
	for _, name := range model.CorrectionNames {
		if name == model.CorrHeating {
			continue
		}
		if f, ok := factors[name]; ok && settings.Enabled(name) {
			total *= f
		}
	}

	comprehensive := factors[model.CorrComprehensive]
	return Result{
		Basic:         basic,
		Benchmark:     basic * comprehensive,
		Comprehensive: comprehensive,
		TotalFactor:   total,
		Factors:       factors,
	}
}

// HeatingImpact splits coal between heat supply and generation. Heating coal
// is the mass needed to deliver the heat output; the combined rate discounts
// the power-only rate by up to 40% of the heat-to-power ratio.
func (c *Calculator) HeatingImpact(params model.Params) HeatingResult {
	p := params.ForCalculation()
	electricityMWh := p[model.KeyElectricityOutput]
	heatingGJ := p[model.KeyHeatingOutput]
	calorificKJ := p[model.KeyCoalCalorificValue] * kcalToKJ
	efficiency := p[model.KeyEfficiency]

	powerOnly := c.Basic(electricityMWh, p[model.KeyCoalCalorificValue], efficiency)
	if heatingGJ == 0 {
		return HeatingResult{PowerOnly: powerOnly, Combined: powerOnly}
	}

	heatingCoalKg := correction.SafeDivide(heatingGJ*gjToKJ, calorificKJ*efficiency, 0)

	heatToPower := correction.SafeDivide(heatingGJ, electricityMWh*mwhToGJ, 0)
	combined := combinedBand.Clamp(powerOnly * (1 - 0.4*heatToPower))

	return HeatingResult{
		PowerOnly:     powerOnly,
		HeatingCoalKg: heatingCoalKg,
		Combined:      combined,
		Impact:        combined - powerOnly,
	}
}

// Combined evaluates the full heat-and-power view: the benchmark rate with
// heating zeroed out, the heating terms, and the heat share of delivered
// energy (electricity converted to GJ before the ratio is formed).
func (c *Calculator) Combined(params model.Params, settings model.CalcSettings) CombinedResult {
	powerOnlyParams := params.Clone()
	powerOnlyParams[model.KeyHeatingOutput] = 0
	powerOnlyParams[model.KeyHeatingLoad] = 0
	powerOnly := c.Benchmark(powerOnlyParams, settings)

	heating := c.HeatingImpact(params)

	p := params.ForCalculation()
	heatGJ := p[model.KeyHeatingOutput]
	totalGJ := heatGJ + p[model.KeyElectricityOutput]*mwhToGJ

	return CombinedResult{
		PowerOnly:     powerOnly.Benchmark,
		HeatingCoalKg: heating.HeatingCoalKg,
		Combined:      heating.Combined,
		Impact:        heating.Impact,
		HeatingRatio:  correction.SafeDivide(heatGJ, totalGJ, 0),
	}
}

// Modes evaluates the benchmark calculation under the four synthetic
// operating conditions. Each mode works on its own copy of the parameters.
func (c *Calculator) Modes(params model.Params, settings model.CalcSettings) map[Mode]Result {
	base := params.ForCalculation()
	results := make(map[Mode]Result, len(AllModes))

	for _, mode := range AllModes {
		mp := base.Clone()
		switch mode {
		case ModePeak:
			mp[model.KeyActualLoad] = base[model.KeyBaseLoad] * 1.1
			mp[model.KeyHeatingLoad] = 0
		case ModeLow:
			mp[model.KeyActualLoad] = base[model.KeyBaseLoad] * 0.5
			mp[model.KeyHeatingLoad] = 0
		case ModeHeating:
			mp[model.KeyActualLoad] = base[model.KeyBaseLoad] * 0.8
			// The defaults merge fills heating_load with 0, so the fallback
			// must look at the caller's parameters.
			mp[model.KeyHeatingLoad] = params.Get(model.KeyHeatingLoad, defaultHeatingLoad) * 1.2
		default:
			mp[model.KeyActualLoad] = base[model.KeyBaseLoad]
		}
		results[mode] = c.Benchmark(mp, settings)
	}
	return results
}

// Annual runs the benchmark calculation for each month and derives the
// energy-weighted annual rate. Months with zero generation contribute no
// weight; with no generation at all the annual rate is zero.
func (c *Calculator) Annual(monthly []model.Params, settings model.CalcSettings) AnnualResult {
	out := AnnualResult{Monthly: make([]Result, 0, len(monthly))}

	for _, params := range monthly {
		res := c.Benchmark(params, settings)
		out.Monthly = append(out.Monthly, res)

		electricity := params.Get(model.KeyElectricityOutput, 0)
		out.ElectricityMWh += electricity
		out.CoalTonnes += res.Benchmark * electricity / 1000
	}

	if out.ElectricityMWh > 0 {
		out.BenchmarkRate = out.CoalTonnes * 1000 / out.ElectricityMWh
	}
	return out
}

// Sensitivity sweeps one parameter across [min, max] in evenly spaced steps
// (at least 2) and reports the benchmark rate at each point.
func (c *Calculator) Sensitivity(params model.Params, settings model.CalcSettings,
	variable string, minValue, maxValue float64, steps int) []SweepPoint {
	if steps < 2 {
		steps = 2
	}
	stepSize := (maxValue - minValue) / float64(steps-1)

	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		value := minValue + float64(i)*stepSize
		res := c.Benchmark(params.With(variable, value), settings)
		points = append(points, SweepPoint{Value: value, Consumption: res.Benchmark})
	}
	return points
}
