package model

// Params is an open parameter mapping for one calculation.
// Units:
// - loads: % of rated unit load
// - temperatures: degrees C
// - pressures: MPa
// - humidity: %
// - calorific values: kcal/kg
// - electricity_output: MWh
// - heating_output: GJ
//
// Unknown keys are carried along untouched; every reader supplies its own
// default for a missing key.
type Params map[string]float64

// Canonical parameter names. Keep these values stable; they appear verbatim
// in config files, spreadsheets and CSV output.
const (
	KeyBaseLoad           = "base_load"
	KeyActualLoad         = "actual_load"
	KeyTotalLoad          = "total_load"
	KeyHeatingLoad        = "heating_load"
	KeyBaseTemperature    = "base_temperature"
	KeyActualTemperature  = "actual_temperature"
	KeyBaseSeaTemperature = "base_sea_temperature"
	KeyActualSeaTemp      = "actual_sea_temperature"
	KeyBasePressure       = "base_pressure"
	KeyActualPressure     = "actual_pressure"
	KeyBaseHumidity       = "base_humidity"
	KeyActualHumidity     = "actual_humidity"
	KeyBaseSteamTemp      = "base_steam_temp"
	KeyActualSteamTemp    = "actual_steam_temp"
	KeyBaseSteamPressure  = "base_steam_pressure"
	KeyActualSteamPress   = "actual_steam_pressure"
	KeyCoalCalorificValue = "coal_calorific_value"
	KeyActualCalorific    = "actual_calorific_value"
	KeyEfficiency         = "efficiency"
	KeyElectricityOutput  = "electricity_output"
	KeyHeatingOutput      = "heating_output"
)

// Defaults returns the built-in fallback parameter set. Callers merge
// user-supplied values on top of this, so the calculator never sees a
// missing baseline.
func Defaults() Params {
	return Params{
		KeyBaseLoad:           100,
		KeyBaseTemperature:    25,
		KeyBasePressure:       16.7,
		KeyBaseHumidity:       60,
		KeyBaseSeaTemperature: 19,
		KeyBaseSteamTemp:      540,
		KeyHeatingLoad:        0,
		KeyCoalCalorificValue: 4854,
		KeyEfficiency:         0.9,
		KeyElectricityOutput:  1000,
		KeyHeatingOutput:      0,
	}
}

// Get returns the value for key, or def when the key is absent.
func (p Params) Get(key string, def float64) float64 {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Clone returns a shallow copy. Calculations copy before any in-place
// adjustment so caller maps are never mutated.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// With returns a copy with one key overridden.
func (p Params) With(key string, value float64) Params {
	out := p.Clone()
	out[key] = value
	return out
}

// Merge overlays override onto base and returns a new map; neither input is
// modified.
func Merge(base, override Params) Params {
	out := base.Clone()
	for k, v := range override {
		out[k] = v
	}
	return out
}

// ForCalculation fills derived/actual-side keys from their baselines so the
// correction engine always sees a complete pair per factor.
func (p Params) ForCalculation() Params {
	out := Merge(Defaults(), p)
	fillFrom := [...][2]string{
		{KeyActualLoad, KeyBaseLoad},
		{KeyTotalLoad, KeyBaseLoad},
		{KeyActualTemperature, KeyBaseTemperature},
		{KeyActualSeaTemp, KeyBaseSeaTemperature},
		{KeyActualPressure, KeyBasePressure},
		{KeyActualHumidity, KeyBaseHumidity},
		{KeyActualSteamTemp, KeyBaseSteamTemp},
		{KeyBaseSteamPressure, KeyBasePressure},
		{KeyActualCalorific, KeyCoalCalorificValue},
	}
	for _, pair := range fillFrom {
		if _, ok := out[pair[0]]; !ok {
			out[pair[0]] = out[pair[1]]
		}
	}
	if _, ok := out[KeyActualSteamPress]; !ok {
		out[KeyActualSteamPress] = out[KeyBaseSteamPressure]
	}
	return out
}
