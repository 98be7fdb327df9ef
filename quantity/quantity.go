package quantity

import (
	"fmt"
	"hash"
	"strconv"

	"github.com/amp-labs/amp-measure/assert"
	"github.com/amp-labs/amp-measure/collectable"
	"github.com/amp-labs/amp-measure/hashing"
	"github.com/amp-labs/amp-measure/sortable"
	"github.com/amp-labs/amp-measure/units"
)

// Quantity is an immutable value object pairing a numeric magnitude with a
// unit tag. Construct it with New, NewCanonical, NewInTable or MustNew; the
// zero value carries no conversion table and is not usable.
//
// A Quantity captures its conversion table at construction time, so later
// calls to units.SetDefault do not affect existing values. Quantities are
// freely copyable; there is no identity beyond value semantics.
type Quantity struct {
	magnitude float64
	unit      units.Unit
	table     *units.Table
}

// Compile-time checks for the comparison and collection capabilities.
var (
	_ sortable.Sortable[Quantity]       = Quantity{}
	_ collectable.Collectable[Quantity] = Quantity{}
	_ fmt.Stringer                      = Quantity{}
)

// New constructs a Quantity against the process-wide conversion table.
// The magnitude is unconstrained (zero and negative values are allowed);
// the unit must be present in the table, otherwise units.ErrUnknownUnit
// is returned.
func New(magnitude float64, unit units.Unit) (Quantity, error) {
	return NewInTable(units.Default(), magnitude, unit)
}

// NewCanonical constructs a Quantity in the canonical unit of the
// process-wide table. It cannot fail: the canonical unit is always present
// in a valid table.
func NewCanonical(magnitude float64) Quantity {
	table := units.Default()

	q, err := NewInTable(table, magnitude, table.Canonical())
	assert.NoError(err, "canonical unit missing from default table: %v", err)

	return q
}

// NewInTable constructs a Quantity against an explicit conversion table.
// Most callers want New; this variant exists for toolchains that work with
// more than one table in the same process.
func NewInTable(table *units.Table, magnitude float64, unit units.Unit) (Quantity, error) {
	assert.True(table != nil, "quantity requires a conversion table")

	if !table.Contains(unit) {
		return Quantity{}, fmt.Errorf("%w: %q", units.ErrUnknownUnit, unit)
	}

	return Quantity{
		magnitude: magnitude,
		unit:      unit,
		table:     table,
	}, nil
}

// MustNew is a New variant that panics on an unknown unit.
// Intended for tests and compiled-in values.
func MustNew(magnitude float64, unit units.Unit) Quantity {
	q, err := New(magnitude, unit)
	assert.NoError(err, "MustNew(%v, %q): %v", magnitude, unit, err)

	return q
}

// Magnitude returns the raw, unrounded magnitude.
func (q Quantity) Magnitude() float64 {
	return q.magnitude
}

// Unit returns the unit tag.
func (q Quantity) Unit() units.Unit {
	return q.unit
}

// String returns the quantity as "<magnitude> <unit>".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.magnitude, 'g', -1, 64) + " " + q.unit.String()
}

// Convert returns the magnitude expressed in the target unit, rounded per
// units.Round. It returns units.ErrUnknownUnit when the table defines no
// conversion from the quantity's unit to the target. Convert is pure: the
// quantity itself is never modified.
func (q Quantity) Convert(target units.Unit) (int64, error) {
	factor, err := q.table.Factor(q.unit, target)
	if err != nil {
		return 0, err
	}

	return units.Round(factor * q.magnitude), nil
}

// Canonical returns the rounded magnitude in the table's canonical unit.
// It cannot fail for quantities built by a constructor: table validation
// guarantees every in-table unit has a factor to the canonical unit.
func (q Quantity) Canonical() int64 {
	value, err := q.Convert(q.table.Canonical())
	assert.NoError(err, "no canonical conversion for %q: %v", q.unit, err)

	return value
}

// Equals reports conceptual equality: two quantities are equal iff their
// rounded canonical-unit magnitudes are equal. Quantities with different
// magnitude/unit pairs can therefore be equal (20 kg equals 44 lb with the
// built-in table). Because every comparison rounds, values close to a
// rounding boundary behave counterintuitively; see the package documentation.
func (q Quantity) Equals(other Quantity) bool {
	return q.Canonical() == other.Canonical()
}

// NotEquals is the negation of Equals.
func (q Quantity) NotEquals(other Quantity) bool {
	return !q.Equals(other)
}

// LessThan reports whether this quantity's rounded canonical magnitude is
// strictly less than the other's.
func (q Quantity) LessThan(other Quantity) bool {
	return q.Canonical() < other.Canonical()
}

// GreaterThan is defined as other.LessThan(q).
func (q Quantity) GreaterThan(other Quantity) bool {
	return other.LessThan(q)
}

// LessThanOrEqual is defined as LessThan OR Equals.
func (q Quantity) LessThanOrEqual(other Quantity) bool {
	return q.LessThan(other) || q.Equals(other)
}

// GreaterThanOrEqual is defined as GreaterThan OR Equals.
func (q Quantity) GreaterThanOrEqual(other Quantity) bool {
	return q.GreaterThan(other) || q.Equals(other)
}

// UpdateHash hashes the rounded canonical magnitude, keeping the hash
// consistent with Equals: quantities that compare equal hash equal, even
// when their magnitude/unit pairs differ.
func (q Quantity) UpdateHash(h hash.Hash) error {
	return hashing.HashableInt64(q.Canonical()).UpdateHash(h)
}
