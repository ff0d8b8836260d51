// Package data loads parameter sets from external sources: JSON files and
// the two-column spreadsheet layout used by plant engineers. It is a thin
// I/O wrapper; all validation happens in the model package.
package data

import (
	"encoding/json"
	"os"

	"coal-benchmark/internal/model"

	"github.com/pkg/errors"
)

// LoadParamsJSON reads a flat key/value JSON object as a parameter set.
func LoadParamsJSON(path string) (model.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read params")
	}
	var p model.Params
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrapf(err, "parse params %s", path)
	}
	return p, nil
}

// SaveParamsJSON writes a parameter set as indented JSON.
func SaveParamsJSON(path string, p model.Params) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal params")
	}
	return errors.Wrap(os.WriteFile(path, raw, 0o644), "write params")
}

// LoadMonthlyJSON reads an array of parameter sets, one per month.
func LoadMonthlyJSON(path string) ([]model.Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read monthly params")
	}
	var months []model.Params
	if err := json.Unmarshal(raw, &months); err != nil {
		return nil, errors.Wrapf(err, "parse monthly params %s", path)
	}
	return months, nil
}
