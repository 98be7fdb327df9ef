package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T) *Table {
	t.Helper()

	table, err := NewTable(Kilogram, map[Unit]map[Unit]float64{
		Kilogram: {Kilogram: 1, Pound: 2.205},
		Pound:    {Pound: 1, Kilogram: 0.45},
	})
	require.NoError(t, err)

	return table
}

func TestNewTable_CopiesFactors(t *testing.T) {
	t.Parallel()

	factors := map[Unit]map[Unit]float64{
		Kilogram: {Kilogram: 1},
	}

	table, err := NewTable(Kilogram, factors)
	require.NoError(t, err)

	// Mutating the argument after construction must not leak into the table.
	factors[Kilogram][Kilogram] = 99

	factor, err := table.Factor(Kilogram, Kilogram)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.0, factor, 1e-12)
}

func TestTable_Factor(t *testing.T) {
	t.Parallel()

	table := testTable(t)

	tests := []struct {
		name     string
		from     Unit
		to       Unit
		expected float64
		wantErr  bool
	}{
		{name: "kg to lb", from: Kilogram, to: Pound, expected: 2.205},
		{name: "lb to kg", from: Pound, to: Kilogram, expected: 0.45},
		{name: "identity", from: Kilogram, to: Kilogram, expected: 1},
		{name: "unknown source", from: "furlong", to: Kilogram, wantErr: true},
		{name: "unknown target", from: Kilogram, to: "furlong", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factor, err := table.Factor(tt.from, tt.to)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownUnit)

				return
			}

			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, factor, 1e-12)
		})
	}
}

func TestTable_Contains(t *testing.T) {
	t.Parallel()

	table := testTable(t)

	assert.True(t, table.Contains(Kilogram))
	assert.True(t, table.Contains(Pound))
	assert.False(t, table.Contains(Ounce))
	assert.False(t, table.Contains(""))
}

func TestTable_Units_NaturalOrder(t *testing.T) {
	t.Parallel()

	table, err := NewTable("u1", map[Unit]map[Unit]float64{
		"u10": {"u10": 1, "u1": 10},
		"u2":  {"u2": 1, "u1": 2},
		"u1":  {"u1": 1},
	})
	require.NoError(t, err)

	// Natural sort keeps u2 before u10.
	assert.Equal(t, []string{"u1", "u2", "u10"}, table.Units())
}

func TestNewTable_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		canonical Unit
		factors   map[Unit]map[Unit]float64
		contains  []string
	}{
		{
			name:      "missing canonical unit",
			canonical: "",
			factors:   map[Unit]map[Unit]float64{Kilogram: {Kilogram: 1}},
			contains:  []string{"canonical unit is not set"},
		},
		{
			name:      "canonical not in table",
			canonical: Pound,
			factors:   map[Unit]map[Unit]float64{Kilogram: {Kilogram: 1}},
			contains:  []string{"is not in the table"},
		},
		{
			name:      "non-positive factor",
			canonical: Kilogram,
			factors: map[Unit]map[Unit]float64{
				Kilogram: {Kilogram: 1, Pound: -2},
			},
			contains: []string{"must be positive"},
		},
		{
			name:      "missing identity factor",
			canonical: Kilogram,
			factors: map[Unit]map[Unit]float64{
				Kilogram: {Kilogram: 1},
				Pound:    {Kilogram: 0.45},
			},
			contains: []string{"no identity factor"},
		},
		{
			name:      "wrong identity factor",
			canonical: Kilogram,
			factors: map[Unit]map[Unit]float64{
				Kilogram: {Kilogram: 2},
			},
			contains: []string{"identity factor 2"},
		},
		{
			name:      "no path to canonical",
			canonical: Kilogram,
			factors: map[Unit]map[Unit]float64{
				Kilogram: {Kilogram: 1},
				Pound:    {Pound: 1},
			},
			contains: []string{"no factor to canonical unit"},
		},
		{
			name:      "multiple problems accumulate",
			canonical: Kilogram,
			factors: map[Unit]map[Unit]float64{
				Kilogram: {Kilogram: 1},
				Pound:    {Pound: 1, Ounce: -16},
			},
			contains: []string{"must be positive", "no factor to canonical unit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewTable(tt.canonical, tt.factors)
			require.Error(t, err)

			for _, substr := range tt.contains {
				assert.Contains(t, err.Error(), substr)
			}
		})
	}
}

func TestRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected int64
	}{
		{name: "exact integer", value: 20, expected: 20},
		{name: "rounds down", value: 19.4, expected: 19},
		{name: "rounds up", value: 19.6, expected: 20},
		{name: "half rounds away from zero", value: 19.5, expected: 20},
		{name: "negative half rounds away from zero", value: -19.5, expected: -20},
		{name: "zero", value: 0, expected: 0},
		{name: "small negative", value: -0.4, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Round(tt.value))
		})
	}
}
