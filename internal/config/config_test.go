package config

import (
	"os"
	"path/filepath"
	"testing"

	"coal-benchmark/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
default_parameters:
  base_load: 90
  coal_calorific_value: 5000
calculation_settings:
  humidity: false
output:
  decimals: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 90.0, cfg.DefaultParameters[model.KeyBaseLoad])
	assert.Equal(t, 5000.0, cfg.DefaultParameters[model.KeyCoalCalorificValue])
	// Untouched defaults survive the merge.
	assert.Equal(t, 16.7, cfg.DefaultParameters[model.KeyBasePressure])

	assert.False(t, cfg.CalculationSettings.Enabled(model.CorrHumidity))
	assert.True(t, cfg.CalculationSettings.Enabled(model.CorrTemperature))

	assert.Equal(t, 3, cfg.Output.Decimals)
	assert.Equal(t, "results", cfg.Output.Directory)
}

func TestLoad_ValidatesFileParameters(t *testing.T) {
	path := writeConfig(t, `
default_parameters:
  base_load: 150
  efficiency: 2.0
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100.0, cfg.DefaultParameters[model.KeyBaseLoad])
	assert.Equal(t, 1.0, cfg.DefaultParameters[model.KeyEfficiency])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "default_parameters: [not, a, map]")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestParams_OverridesBeatConfig(t *testing.T) {
	cfg := Default()
	cfg.DefaultParameters[model.KeyBaseLoad] = 95

	p := cfg.Params(model.Params{model.KeyBaseLoad: 88, model.KeyActualLoad: 70})
	assert.Equal(t, 88.0, p[model.KeyBaseLoad])
	assert.Equal(t, 70.0, p[model.KeyActualLoad])
	assert.Equal(t, 0.9, p[model.KeyEfficiency], "config default fills the gap")
}

func TestDefault_IsSelfConsistent(t *testing.T) {
	cfg := Default()
	assert.NotEmpty(t, cfg.DefaultParameters)
	assert.NotEmpty(t, cfg.CalculationSettings)
	assert.Equal(t, 2, cfg.Output.Decimals)
}
