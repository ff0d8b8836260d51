package handlers

import (
	"net/http"

	"coal-benchmark/internal/analysis"
	"coal-benchmark/internal/api/models"
	"coal-benchmark/internal/config"
	"coal-benchmark/internal/consumption"
	"coal-benchmark/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalculateHandler serves the benchmark-calculation endpoints.
type CalculateHandler struct {
	cfg  *config.Config
	calc *consumption.Calculator
}

// NewCalculateHandler creates a calculate handler backed by the given
// configuration (defaults and correction gating).
func NewCalculateHandler(cfg *config.Config) *CalculateHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CalculateHandler{cfg: cfg, calc: consumption.New()}
}

// merged resolves the effective parameters and settings for one request.
func (h *CalculateHandler) merged(params model.Params, settings model.CalcSettings) (model.Params, model.CalcSettings) {
	p := h.cfg.Params(params)
	s := h.cfg.CalculationSettings.Clone()
	for name, enabled := range settings {
		s[name] = enabled
	}
	return p, s
}

// Calculate handles POST /api/v1/calculate
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	params, settings := h.merged(req.Parameters, req.Settings)
	c.JSON(http.StatusOK, models.CalculateResponse{
		ID:     uuid.NewString(),
		Status: "completed",
		Result: h.calc.Benchmark(params, settings),
	})
}

// Modes handles POST /api/v1/calculate/modes
func (h *CalculateHandler) Modes(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	params, settings := h.merged(req.Parameters, req.Settings)
	c.JSON(http.StatusOK, models.ModesResponse{
		ID:     uuid.NewString(),
		Status: "completed",
		Modes:  h.calc.Modes(params, settings),
	})
}

// Heating handles POST /api/v1/calculate/heating
func (h *CalculateHandler) Heating(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	params, settings := h.merged(req.Parameters, req.Settings)
	c.JSON(http.StatusOK, models.HeatingResponse{
		ID:     uuid.NewString(),
		Status: "completed",
		Result: h.calc.Combined(params, settings),
	})
}

// Annual handles POST /api/v1/calculate/annual
func (h *CalculateHandler) Annual(c *gin.Context) {
	var req models.AnnualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if len(req.Months) == 0 {
		badRequestMsg(c, "INVALID_REQUEST", "months must not be empty")
		return
	}
	months := make([]model.Params, 0, len(req.Months))
	for _, m := range req.Months {
		merged := h.cfg.Params(m)
		// The configured electricity default must not weight months that
		// report no generation of their own.
		if _, ok := m[model.KeyElectricityOutput]; !ok {
			delete(merged, model.KeyElectricityOutput)
		}
		months = append(months, merged)
	}
	_, settings := h.merged(nil, req.Settings)

	annual := h.calc.Annual(months, settings)
	c.JSON(http.StatusOK, models.AnnualResponse{
		ID:      uuid.NewString(),
		Status:  "completed",
		Annual:  annual,
		Summary: analysis.Summarize(annual.Monthly),
	})
}

// Sensitivity handles POST /api/v1/calculate/sensitivity
func (h *CalculateHandler) Sensitivity(c *gin.Context) {
	var req models.SensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if req.Max < req.Min {
		badRequestMsg(c, "INVALID_RANGE", "max must be >= min")
		return
	}
	params, settings := h.merged(req.Parameters, req.Settings)
	points := h.calc.Sensitivity(params, settings, req.Variable, req.Min, req.Max, req.Steps)
	c.JSON(http.StatusOK, models.SensitivityResponse{
		ID:       uuid.NewString(),
		Status:   "completed",
		Variable: req.Variable,
		Points:   points,
	})
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

func badRequestMsg(c *gin.Context, code, msg string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: msg},
	})
}
