package handlers

import (
	"net/http"

	"coal-benchmark/internal/api/models"
	"coal-benchmark/internal/config"
	"coal-benchmark/internal/correction"
	"coal-benchmark/internal/model"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves discovery endpoints: configured defaults and the
// correction catalog.
type MetaHandler struct {
	cfg *config.Config
}

func NewMetaHandler(cfg *config.Config) *MetaHandler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &MetaHandler{cfg: cfg}
}

// Defaults handles GET /api/v1/parameters/defaults
func (h *MetaHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultsResponse{
		Parameters: h.cfg.DefaultParameters.Clone(),
		Settings:   h.cfg.CalculationSettings.Clone(),
	})
}

// Corrections handles GET /api/v1/corrections
func (h *MetaHandler) Corrections(c *gin.Context) {
	bands := correction.Bands()
	out := make([]models.CorrectionInfo, 0, len(bands))
	for _, name := range model.CorrectionNames {
		b := bands[name]
		out = append(out, models.CorrectionInfo{Name: name, Min: b.Min, Max: b.Max})
	}
	b := bands[model.CorrComprehensive]
	out = append(out, models.CorrectionInfo{Name: model.CorrComprehensive, Min: b.Min, Max: b.Max})
	c.JSON(http.StatusOK, gin.H{"corrections": out})
}
