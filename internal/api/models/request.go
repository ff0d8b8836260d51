package models

import "coal-benchmark/internal/model"

// CalculateRequest is the body for the benchmark, modes and heating
// endpoints. Parameters overlay the server's configured defaults; settings
// overlay the default correction gating.
type CalculateRequest struct {
	Parameters model.Params       `json:"parameters"`
	Settings   model.CalcSettings `json:"settings,omitempty"`
}

// SensitivityRequest sweeps one parameter between Min and Max.
type SensitivityRequest struct {
	Parameters model.Params       `json:"parameters"`
	Settings   model.CalcSettings `json:"settings,omitempty"`
	Variable   string             `json:"variable" binding:"required"`
	Min        float64            `json:"min"`
	Max        float64            `json:"max"`
	Steps      int                `json:"steps"`
}

// AnnualRequest aggregates a list of monthly parameter sets.
type AnnualRequest struct {
	Months   []model.Params     `json:"months" binding:"required"`
	Settings model.CalcSettings `json:"settings,omitempty"`
}

// CompareRequest compares monthly observations against a benchmark and
// recomputes each month's rate.
type CompareRequest struct {
	Benchmark model.Params            `json:"benchmark" binding:"required"`
	Months    map[string]model.Params `json:"months" binding:"required"`
	Settings  model.CalcSettings      `json:"settings,omitempty"`
}
