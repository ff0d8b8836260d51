package model

// Range is a closed numeric interval used for input validation.
type Range struct {
	Min float64
	Max float64
}

// Clamp pulls v back to the nearest bound.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// validRanges maps parameter names to their accepted physical ranges.
// Out-of-range inputs are corrected silently, never rejected.
var validRanges = map[string]Range{
	KeyBaseLoad:           {0, 100},
	KeyActualLoad:         {0, 110},
	KeyHeatingLoad:        {0, 100},
	KeyBaseTemperature:    {-40, 80},
	KeyActualTemperature:  {-40, 80},
	KeyBaseSeaTemperature: {-40, 80},
	KeyActualSeaTemp:      {-40, 80},
	KeyBasePressure:       {0, 50},
	KeyActualPressure:     {0, 50},
	KeyBaseHumidity:       {0, 100},
	KeyActualHumidity:     {0, 100},
	KeyEfficiency:         {0.5, 1.0},
	KeyCoalCalorificValue: {1000, 8000},
	KeyActualCalorific:    {1000, 8000},
}

// nonNegative lists quantities that only need a lower bound.
var nonNegative = []string{KeyElectricityOutput, KeyHeatingOutput}

// Validate returns a copy of p with every known field clamped into its valid
// range. Unknown keys pass through unchanged.
func Validate(p Params) Params {
	out := p.Clone()
	for key, r := range validRanges {
		if v, ok := out[key]; ok {
			out[key] = r.Clamp(v)
		}
	}
	for _, key := range nonNegative {
		if v, ok := out[key]; ok && v < 0 {
			out[key] = 0
		}
	}
	return out
}
