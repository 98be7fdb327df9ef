package units

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-measure/errors"
	"github.com/amp-labs/amp-measure/logger"
	"github.com/amp-labs/amp-measure/validate"
)

// TableConfig is the YAML representation of a conversion table.
//
// Example:
//
//	canonical: kg
//	factors:
//	  kg:
//	    kg: 1
//	    lb: 2.205
//	  lb:
//	    lb: 1
//	    kg: 0.45
type TableConfig struct {
	Canonical string                        `json:"canonical" yaml:"canonical"`
	Factors   map[string]map[string]float64 `json:"factors"   yaml:"factors"`
}

// Validate checks the config for the problems that can be caught before
// building a table: a missing canonical unit and an empty factors map.
// Structural invariants of the factors themselves (positivity, identity,
// canonical reachability) are checked by Table.Validate.
func (c TableConfig) Validate() error {
	var problems errors.Collection

	if c.Canonical == "" {
		problems.Add(fmt.Errorf("canonical unit is required")) //nolint:err113
	}

	if len(c.Factors) == 0 {
		problems.Add(fmt.Errorf("factors must not be empty")) //nolint:err113
	}

	return problems.GetError()
}

// Compile-time check that TableConfig implements validate.HasValidate.
var _ validate.HasValidate = TableConfig{}

// LoadTable reads a YAML table definition, validates it, and builds a Table.
func LoadTable(ctx context.Context, r io.Reader) (*Table, error) {
	var cfg TableConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding conversion table: %w", err)
	}

	if err := validate.Validate(ctx, cfg); err != nil {
		return nil, err
	}

	factors := make(map[Unit]map[Unit]float64, len(cfg.Factors))

	for from, targets := range cfg.Factors {
		row := make(map[Unit]float64, len(targets))

		for to, factor := range targets {
			row[Unit(to)] = factor
		}

		factors[Unit(from)] = row
	}

	table, err := NewTable(Unit(cfg.Canonical), factors)
	if err != nil {
		return nil, err
	}

	logger.Get(ctx).Debug("loaded conversion table",
		"canonical", table.Canonical(),
		"units", len(factors))

	return table, nil
}

// LoadTableFile is a LoadTable variant that reads the definition from a file.
func LoadTableFile(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening conversion table file: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Get(ctx).Warn("failed to close conversion table file",
				"path", path, "error", closeErr)
		}
	}()

	table, err := LoadTable(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("loading conversion table from %q: %w", path, err)
	}

	return table, nil
}
