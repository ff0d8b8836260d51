package model

// CalcSettings selects which corrections participate in the comprehensive
// factor. A missing key means enabled; the load-factor correction is applied
// regardless of settings.
type CalcSettings map[string]bool

// Correction names, shared between settings, factor sets and reports.
const (
	CorrLoadFactor     = "load_factor"
	CorrTemperature    = "temperature"
	CorrPressure       = "pressure"
	CorrHumidity       = "humidity"
	CorrHeating        = "heating"
	CorrSteamParameter = "steam_parameter"
	CorrFuel           = "fuel"
	CorrSeaTemperature = "sea_temperature"
	CorrComprehensive  = "comprehensive"
)

// CorrectionNames lists the individual corrections in report order.
var CorrectionNames = []string{
	CorrLoadFactor,
	CorrTemperature,
	CorrPressure,
	CorrHumidity,
	CorrHeating,
	CorrSteamParameter,
	CorrFuel,
	CorrSeaTemperature,
}

// DefaultSettings enables every correction except the sea-temperature one,
// which is site-specific and must be opted into.
func DefaultSettings() CalcSettings {
	return CalcSettings{
		CorrLoadFactor:     true,
		CorrTemperature:    true,
		CorrPressure:       true,
		CorrHumidity:       true,
		CorrHeating:        true,
		CorrSteamParameter: true,
		CorrFuel:           true,
		CorrSeaTemperature: false,
	}
}

// Enabled reports whether the named correction participates. The load-factor
// correction is always on; the sea-temperature correction is opt-in; every
// other correction defaults to enabled when unset.
func (s CalcSettings) Enabled(name string) bool {
	if name == CorrLoadFactor {
		return true
	}
	if s != nil {
		if v, ok := s[name]; ok {
			return v
		}
	}
	return name != CorrSeaTemperature
}

// Clone returns a shallow copy.
func (s CalcSettings) Clone() CalcSettings {
	out := make(CalcSettings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
