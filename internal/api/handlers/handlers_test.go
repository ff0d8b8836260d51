package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coal-benchmark/internal/api/models"
	"coal-benchmark/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	calculate := NewCalculateHandler(nil)
	compare := NewCompareHandler(nil)
	meta := NewMetaHandler(nil)

	api := router.Group("/api/v1")
	api.POST("/calculate", calculate.Calculate)
	api.POST("/calculate/modes", calculate.Modes)
	api.POST("/calculate/annual", calculate.Annual)
	api.POST("/calculate/sensitivity", calculate.Sensitivity)
	api.POST("/compare", compare.Compare)
	api.GET("/parameters/defaults", meta.Defaults)
	api.GET("/corrections", meta.Corrections)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculate_ReturnsResultWithFactors(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/calculate", models.CalculateRequest{
		Parameters: model.Params{model.KeyActualLoad: 60, model.KeyBaseLoad: 100},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CalculateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.Greater(t, resp.Result.Benchmark, resp.Result.Basic)
	assert.Contains(t, resp.Result.Factors, model.CorrLoadFactor)
}

func TestCalculate_RejectsMalformedBody(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculate", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestModes_ReturnsAllFour(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/calculate/modes", models.CalculateRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ModesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Modes, 4)
}

func TestAnnual_EmptyMonthsRejected(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/calculate/annual", map[string]any{"months": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnual_SummaryAccompaniesResults(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/calculate/annual", models.AnnualRequest{
		Months: []model.Params{
			{model.KeyElectricityOutput: 900},
			{model.KeyElectricityOutput: 1100, model.KeyActualLoad: 60},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnnualResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Summary.Count)
	assert.Equal(t, 2000.0, resp.Annual.ElectricityMWh)
	assert.Greater(t, resp.Annual.BenchmarkRate, 0.0)
}

func TestAnnual_MonthsWithoutGenerationCarryNoWeight(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/calculate/annual", models.AnnualRequest{
		Months: []model.Params{
			{model.KeyElectricityOutput: 2000},
			{model.KeyActualLoad: 60},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnnualResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2000.0, resp.Annual.ElectricityMWh,
		"configured electricity default must not weight a month that omits it")
}

func TestSensitivity_InvalidRangeRejected(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/calculate/sensitivity", models.SensitivityRequest{
		Variable: model.KeyActualLoad,
		Min:      100,
		Max:      50,
		Steps:    5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_RANGE", resp.Error.Code)
}

func TestSensitivity_SweepEndpoints(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/calculate/sensitivity", models.SensitivityRequest{
		Variable: model.KeyActualLoad,
		Min:      50,
		Max:      100,
		Steps:    6,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SensitivityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 6)
	assert.InDelta(t, 50.0, resp.Points[0].Value, 1e-9)
	assert.InDelta(t, 100.0, resp.Points[5].Value, 1e-9)
}

func TestCompare_RanksMonths(t *testing.T) {
	router := testRouter()
	w := postJSON(t, router, "/api/v1/compare", models.CompareRequest{
		Benchmark: model.Params{"unit_load": 100, "coal_heat_value": 4854},
		Months: map[string]model.Params{
			"january":  {"unit_load": 95, "coal_heat_value": 4800},
			"february": {"unit_load": 60, "coal_heat_value": 4500},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Ranking, 2)
	assert.Equal(t, "january", resp.Ranking[0].Month, "milder month ranks first")
	assert.Len(t, resp.Comparison.Months, 2)
}

func TestDefaults_ExposesConfiguredValues(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/parameters/defaults", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.DefaultsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4854.0, resp.Parameters[model.KeyCoalCalorificValue])
	assert.NotEmpty(t, resp.Settings)
}

func TestCorrections_ListsBands(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/corrections", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Corrections []models.CorrectionInfo `json:"corrections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Corrections, 9, "eight factors plus the comprehensive band")
}
