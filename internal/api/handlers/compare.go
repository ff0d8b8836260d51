package handlers

import (
	"net/http"

	"coal-benchmark/internal/analysis"
	"coal-benchmark/internal/api/models"
	"coal-benchmark/internal/config"
	"coal-benchmark/internal/consumption"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompareHandler serves benchmark-vs-monthly comparison requests.
type CompareHandler struct {
	cfg  *config.Config
	calc *consumption.Calculator
}

func NewCompareHandler(cfg *config.Config) *CompareHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CompareHandler{cfg: cfg, calc: consumption.New()}
}

// Compare handles POST /api/v1/compare
func (h *CompareHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	if len(req.Months) == 0 {
		badRequestMsg(c, "INVALID_REQUEST", "months must not be empty")
		return
	}

	settings := h.cfg.CalculationSettings.Clone()
	for name, enabled := range req.Settings {
		settings[name] = enabled
	}

	comparison := h.calc.CompareWithBenchmark(req.Benchmark, req.Months)
	rates := h.calc.MonthlyConsumption(req.Benchmark, req.Months, settings)

	c.JSON(http.StatusOK, models.CompareResponse{
		ID:         uuid.NewString(),
		Status:     "completed",
		Comparison: comparison,
		Rates:      rates,
		Ranking:    analysis.RankMonthsByRate(rates.Monthly),
	})
}
