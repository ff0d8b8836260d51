package models

import (
	"coal-benchmark/internal/analysis"
	"coal-benchmark/internal/consumption"
	"coal-benchmark/internal/model"
)

// CalculateResponse wraps one benchmark calculation.
type CalculateResponse struct {
	ID     string             `json:"id"`
	Status string             `json:"status"`
	Result consumption.Result `json:"result"`
}

// ModesResponse holds the per-operating-mode figures.
type ModesResponse struct {
	ID     string                                  `json:"id"`
	Status string                                  `json:"status"`
	Modes  map[consumption.Mode]consumption.Result `json:"modes"`
}

// HeatingResponse holds the combined heat-and-power figures.
type HeatingResponse struct {
	ID     string                     `json:"id"`
	Status string                     `json:"status"`
	Result consumption.CombinedResult `json:"result"`
}

// AnnualResponse holds the annual aggregation plus spread statistics over the
// monthly rates.
type AnnualResponse struct {
	ID      string                   `json:"id"`
	Status  string                   `json:"status"`
	Annual  consumption.AnnualResult `json:"annual"`
	Summary analysis.RateSummary     `json:"summary"`
}

// SensitivityResponse holds an ordered sweep.
type SensitivityResponse struct {
	ID       string                   `json:"id"`
	Status   string                   `json:"status"`
	Variable string                   `json:"variable"`
	Points   []consumption.SweepPoint `json:"points"`
}

// CompareResponse holds per-parameter comparisons, recomputed monthly rates
// and the month ranking.
type CompareResponse struct {
	ID         string                       `json:"id"`
	Status     string                       `json:"status"`
	Comparison consumption.ComparisonResult `json:"comparison"`
	Rates      consumption.MonthlyRates     `json:"rates"`
	Ranking    []analysis.RankedMonth       `json:"ranking"`
}

// DefaultsResponse exposes the configured defaults so clients can show what
// a calculation will assume for missing keys.
type DefaultsResponse struct {
	Parameters model.Params       `json:"parameters"`
	Settings   model.CalcSettings `json:"settings"`
}

// CorrectionInfo describes one correction factor for discovery endpoints.
type CorrectionInfo struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
