package config

import (
	"os"

	"coal-benchmark/internal/model"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
//
// default_parameters overlays the built-in parameter defaults, and
// calculation_settings overlays the default correction gating; a config file
// only needs to state what it changes.
type Config struct {
	DefaultParameters   model.Params       `yaml:"default_parameters"`
	CalculationSettings model.CalcSettings `yaml:"calculation_settings"`
	Output              OutputConfig       `yaml:"output"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Decimals  int    `yaml:"decimals"`  // decimal places in text/CSV reports
	Directory string `yaml:"directory"` // default directory for CSV exports
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		DefaultParameters:   model.Defaults(),
		CalculationSettings: model.DefaultSettings(),
		Output: OutputConfig{
			Decimals:  2,
			Directory: "results",
		},
	}
}

// Load reads a YAML config and merges it over the built-in defaults.
// Parameters from the file are range-validated on the way in.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	cfg := Default()
	if file.DefaultParameters != nil {
		cfg.DefaultParameters = model.Validate(
			model.Merge(cfg.DefaultParameters, file.DefaultParameters))
	}
	for name, enabled := range file.CalculationSettings {
		cfg.CalculationSettings[name] = enabled
	}
	if file.Output.Decimals > 0 {
		cfg.Output.Decimals = file.Output.Decimals
	}
	if file.Output.Directory != "" {
		cfg.Output.Directory = file.Output.Directory
	}
	return cfg, nil
}

// Params merges caller-supplied overrides onto the configured defaults,
// producing the parameter set for one calculation.
func (c *Config) Params(overrides model.Params) model.Params {
	return model.Validate(model.Merge(c.DefaultParameters, overrides))
}
