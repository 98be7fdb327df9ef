package units

import (
	"go.uber.org/atomic"

	"github.com/amp-labs/amp-measure/assert"
)

// MustNewTable is a NewTable variant that panics when the table is invalid.
// Intended for compiled-in tables and tests, where an invalid table is a
// programming error.
func MustNewTable(canonical Unit, factors map[Unit]map[Unit]float64) *Table {
	table, err := NewTable(canonical, factors)
	assert.NoError(err, "invalid built-in conversion table: %v", err)

	return table
}

// builtinTable returns the compiled-in mass conversion table. Kilogram is
// canonical; every unit carries an identity factor and a factor to kg.
// Cross-factors between non-canonical units are only defined where the
// conversion is commonly asked for.
func builtinTable() *Table {
	return MustNewTable(Kilogram, map[Unit]map[Unit]float64{
		Kilogram: {Kilogram: 1, Pound: 2.205, Gram: 1000},
		Pound:    {Pound: 1, Kilogram: 0.45, Ounce: 16},
		Gram:     {Gram: 1, Kilogram: 0.001},
		Ounce:    {Ounce: 1, Kilogram: 0.0283, Pound: 0.0625},
	})
}

// defaultTable holds the process-wide conversion table. It is initialized to
// the built-in table and may be replaced once at startup via SetDefault; it
// is never mutated afterward. The atomic pointer makes reads safe from any
// goroutine without locking.
var defaultTable = atomic.NewPointer(builtinTable()) //nolint:gochecknoglobals

// Default returns the process-wide conversion table.
func Default() *Table {
	return defaultTable.Load()
}

// SetDefault installs a different process-wide conversion table. Call this
// once during startup, before any quantities are constructed; quantities
// capture their table at construction time and are unaffected by later calls.
func SetDefault(table *Table) {
	assert.True(table != nil, "SetDefault requires a non-nil table")

	defaultTable.Store(table)
}
