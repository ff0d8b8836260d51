// Package correction computes the empirical correction factors applied to the
// basic coal-consumption rate. Every factor is a pure function of an
// (actual, baseline) reading pair, centered at 1.0 under baseline conditions
// and clamped to a factor-specific band. Degenerate inputs (zero or negative
// baselines) yield the neutral 1.0 instead of an error.
package correction

import (
	"math"

	"coal-benchmark/internal/model"
)

// FactorSet maps correction names to their computed multipliers, including
// the synthesized comprehensive factor.
type FactorSet map[string]float64

// Output bands. Each factor is clamped into its band before entering the
// comprehensive product; the product itself is clamped into bandComprehensive.
var (
	bandLoadFactor     = model.Range{Min: 0.8, Max: 1.5}
	bandTemperature    = model.Range{Min: 0.95, Max: 1.05}
	bandPressure       = model.Range{Min: 0.98, Max: 1.02}
	bandHumidity       = model.Range{Min: 0.99, Max: 1.01}
	bandHeating        = model.Range{Min: 0.7, Max: 1.0}
	bandSteamParameter = model.Range{Min: 0.97, Max: 1.03}
	bandFuel           = model.Range{Min: 0.8, Max: 1.2}
	bandSeaTemperature = model.Range{Min: 0.98, Max: 1.02}
	bandComprehensive  = model.Range{Min: 0.7, Max: 1.3}
)

// Bands exposes the per-factor clamp bands for reporting.
func Bands() map[string]model.Range {
	return map[string]model.Range{
		model.CorrLoadFactor:     bandLoadFactor,
		model.CorrTemperature:    bandTemperature,
		model.CorrPressure:       bandPressure,
		model.CorrHumidity:       bandHumidity,
		model.CorrHeating:        bandHeating,
		model.CorrSteamParameter: bandSteamParameter,
		model.CorrFuel:           bandFuel,
		model.CorrSeaTemperature: bandSeaTemperature,
		model.CorrComprehensive:  bandComprehensive,
	}
}

// SafeDivide returns num/den, or def when the denominator is zero or not
// finite. All ratio computations in this package go through it.
func SafeDivide(num, den, def float64) float64 {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return def
	}
	q := num / den
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return def
	}
	return q
}

// LoadFactor corrects for off-design unit load. The ratio actual/base feeds a
// piecewise-linear penalty curve: flat at 1.0 across the 70-100% design band,
// rising toward low load (1.15 at 50%, 1.3 at 30%, steeper below) and toward
// overload (1.05 at 110%, steeper above).
func LoadFactor(actualLoad, baseLoad float64) float64 {
	if baseLoad <= 0 {
		return 1.0
	}
	r := actualLoad / baseLoad
	var f float64
	switch {
	case r < 0.3:
		f = 1.3 + 1.0*(0.3-r)
	case r < 0.5:
		f = 1.15 + 0.75*(0.5-r)
	case r < 0.7:
		f = 1.0 + 0.75*(0.7-r)
	case r <= 1.0:
		f = 1.0
	case r <= 1.1:
		f = 1.0 + 0.5*(r-1.0)
	default:
		f = 1.05 + 1.0*(r-1.1)
	}
	return bandLoadFactor.Clamp(f)
}

// Temperature corrects for ambient temperature deviation (degrees C).
func Temperature(actual, base float64) float64 {
	return bandTemperature.Clamp(1 + 0.002*(actual-base))
}

// Pressure corrects for main pressure deviation relative to baseline.
func Pressure(actual, base float64) float64 {
	if base <= 0 {
		return 1.0
	}
	return bandPressure.Clamp(1 + 2.3*(SafeDivide(actual, base, 1.0)-1))
}

// Humidity corrects for ambient humidity deviation (%).
func Humidity(actual, base float64) float64 {
	return bandHumidity.Clamp(1 + 0.0001*(actual-base))
}

// Heating credits heat extraction: steam diverted to heating reduces the
// per-kWh charge against electricity. Neutral when either input is not
// positive.
func Heating(heatingLoad, totalLoad float64) float64 {
	if heatingLoad <= 0 || totalLoad <= 0 {
		return 1.0
	}
	return bandHeating.Clamp(1 - 0.3*SafeDivide(heatingLoad, totalLoad, 0))
}

// SteamParameter corrects for main-steam temperature and pressure deviation
// from design values.
func SteamParameter(actualTemp, actualPressure, baseTemp, basePressure float64) float64 {
	tempPart := 1 + 0.0005*(actualTemp-baseTemp)
	pressurePart := 1.0
	if basePressure > 0 {
		pressurePart = 1 + 0.002*(SafeDivide(actualPressure, basePressure, 1.0)-1)
	}
	return bandSteamParameter.Clamp(tempPart * pressurePart)
}

// Fuel corrects for coal quality: lower heat value than baseline means more
// coal burned per kWh. Both values in the same unit.
func Fuel(actualCalorific, baseCalorific float64) float64 {
	if actualCalorific <= 0 || baseCalorific <= 0 {
		return 1.0
	}
	return bandFuel.Clamp(SafeDivide(baseCalorific, actualCalorific, 1.0))
}

// SeaTemperature corrects condenser performance for cooling-water temperature
// deviation (degrees C). Only applied when explicitly enabled in settings.
func SeaTemperature(actual, base float64) float64 {
	return bandSeaTemperature.Clamp(1 + 0.0015*(actual-base))
}

// Exponential evaluates the saturating correction a + b*(1-exp(-x/c)).
// Degenerate or overflowing input falls back to the asymptote a+b.
func Exponential(x, a, b, c float64) float64 {
	if c == 0 {
		return a + b
	}
	v := a + b*(1-math.Exp(-x/c))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return a + b
	}
	return v
}

// Compute evaluates every correction for the given parameters and composes
// the enabled ones (per settings) into the comprehensive factor. Each factor
// in the returned set is already clamped to its band; disabled factors are
// reported but excluded from the product.
func Compute(params model.Params, settings model.CalcSettings) FactorSet {
	p := params.ForCalculation()

	factors := FactorSet{
		model.CorrLoadFactor: LoadFactor(p[model.KeyActualLoad], p[model.KeyBaseLoad]),
		model.CorrTemperature: Temperature(
			p[model.KeyActualTemperature], p[model.KeyBaseTemperature]),
		model.CorrPressure: Pressure(p[model.KeyActualPressure], p[model.KeyBasePressure]),
		model.CorrHumidity: Humidity(p[model.KeyActualHumidity], p[model.KeyBaseHumidity]),
		model.CorrHeating:  Heating(p[model.KeyHeatingLoad], p[model.KeyTotalLoad]),
		model.CorrSteamParameter: SteamParameter(
			p[model.KeyActualSteamTemp], p[model.KeyActualSteamPress],
			p[model.KeyBaseSteamTemp], p[model.KeyBaseSteamPressure]),
		model.CorrFuel: Fuel(p[model.KeyActualCalorific], p[model.KeyCoalCalorificValue]),
	}
	if settings.Enabled(model.CorrSeaTemperature) {
		factors[model.CorrSeaTemperature] = SeaTemperature(
			p[model.KeyActualSeaTemp], p[model.KeyBaseSeaTemperature])
	}

	comprehensive := 1.0
	for _, name := range model.CorrectionNames {
		f, ok := factors[name]
		if !ok || !settings.Enabled(name) {
			continue
		}
		comprehensive *= f
	}
	factors[model.CorrComprehensive] = bandComprehensive.Clamp(comprehensive)
	return factors
}
