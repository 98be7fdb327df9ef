package units

import (
	"fmt"
	"strconv"

	"facette.io/natsort"

	"github.com/amp-labs/amp-measure/errors"
	"github.com/amp-labs/amp-measure/logger"
)

// Table is an immutable conversion table: a mapping from (source unit, target
// unit) to a multiplicative factor, plus the canonical unit that comparisons
// normalize to.
//
// A valid table guarantees that every unit carries an identity factor of 1
// and a factor to the canonical unit, so normalizing any in-table unit can
// never fail. Factors between non-canonical unit pairs are optional;
// converting along a missing pair returns ErrUnknownUnit.
type Table struct {
	canonical Unit
	factors   map[Unit]map[Unit]float64
}

// NewTable builds a Table from the given factors and canonical unit.
// The factors map is deep-copied, so later mutation of the argument does not
// affect the table. The table is validated before being returned.
func NewTable(canonical Unit, factors map[Unit]map[Unit]float64) (*Table, error) {
	copied := make(map[Unit]map[Unit]float64, len(factors))

	for from, targets := range factors {
		row := make(map[Unit]float64, len(targets))

		for to, factor := range targets {
			row[to] = factor
		}

		copied[from] = row
	}

	table := &Table{
		canonical: canonical,
		factors:   copied,
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// Canonical returns the unit that comparisons normalize to.
func (t *Table) Canonical() Unit {
	return t.canonical
}

// Contains reports whether the unit is a source unit in this table.
func (t *Table) Contains(unit Unit) bool {
	_, ok := t.factors[unit]

	return ok
}

// Factor returns the multiplicative factor for converting from one unit to
// another. It returns ErrUnknownUnit (annotated with both units) when the
// source unit is not in the table, or when the table defines no factor from
// the source to the target.
func (t *Table) Factor(from, to Unit) (float64, error) {
	targets, ok := t.factors[from]
	if !ok {
		conversionsTotal.WithLabelValues(from.String(), to.String(), "true").Inc()

		return 0, logger.AnnotateError(
			fmt.Errorf("%w: %q", ErrUnknownUnit, from), "from", from, "to", to)
	}

	factor, ok := targets[to]
	if !ok {
		conversionsTotal.WithLabelValues(from.String(), to.String(), "true").Inc()

		return 0, logger.AnnotateError(
			fmt.Errorf("%w: no conversion from %q to %q", ErrUnknownUnit, from, to),
			"from", from, "to", to)
	}

	conversionsTotal.WithLabelValues(from.String(), to.String(), "false").Inc()

	return factor, nil
}

// Units returns the source units of the table in natural sort order.
func (t *Table) Units() []string {
	names := make([]string, 0, len(t.factors))

	for unit := range t.factors {
		names = append(names, unit.String())
	}

	natsort.Sort(names)

	return names
}

// Validate checks the structural invariants of the table:
//   - the canonical unit is set and present as a source unit
//   - every factor is positive
//   - every unit has an identity factor of exactly 1
//   - every unit has a factor to the canonical unit
//
// All violations are accumulated and returned as one joined error.
func (t *Table) Validate() error {
	var problems errors.Collection

	if t.canonical == "" {
		problems.Add(fmt.Errorf("%w: canonical unit is not set", ErrUnknownUnit))
	} else if !t.Contains(t.canonical) {
		problems.Add(fmt.Errorf("%w: canonical unit %q is not in the table", ErrUnknownUnit, t.canonical))
	}

	for from, targets := range t.factors {
		for to, factor := range targets {
			if factor <= 0 {
				problems.Add(fmt.Errorf("factor %s -> %s must be positive, got %s", //nolint:err113
					from, to, strconv.FormatFloat(factor, 'g', -1, 64)))
			}
		}

		if identity, ok := targets[from]; !ok {
			problems.Add(fmt.Errorf("unit %q has no identity factor", from)) //nolint:err113
		} else if identity != 1 {
			problems.Add(fmt.Errorf("unit %q has identity factor %s, want 1", //nolint:err113
				from, strconv.FormatFloat(identity, 'g', -1, 64)))
		}

		if t.canonical != "" {
			if _, ok := targets[t.canonical]; !ok {
				problems.Add(fmt.Errorf("unit %q has no factor to canonical unit %q", //nolint:err113
					from, t.canonical))
			}
		}
	}

	return problems.GetError()
}
