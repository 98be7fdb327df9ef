// Package quantity provides an immutable measured-quantity value object with
// unit conversion and comparison operations.
//
// # Overview
//
// A [Quantity] pairs a magnitude with a unit tag from a conversion table
// (see [github.com/amp-labs/amp-measure/units]). All comparison operators are
// derived from one normalization: the magnitude converted to the table's
// canonical unit and rounded to the nearest integer
// ([github.com/amp-labs/amp-measure/units.Round], half away from zero).
//
//	a.Equals(b)              := a.Canonical() == b.Canonical()
//	a.LessThan(b)            := a.Canonical() <  b.Canonical()
//	a.GreaterThan(b)         := b.LessThan(a)
//	a.LessThanOrEqual(b)     := a.LessThan(b) || a.Equals(b)
//	a.GreaterThanOrEqual(b)  := a.GreaterThan(b) || a.Equals(b)
//	a.NotEquals(b)           := !a.Equals(b)
//
// This is conceptual equality, not identity: with the built-in table,
// MustNew(20, units.Kilogram) equals MustNew(44, units.Pound) because
// 44 lb converts to round(44 * 0.45) = 20 kg.
//
// # Rounding Caveats
//
// Rounding happens independently inside every comparison, and the design
// makes no transitivity promise beyond what that rounding yields. Concretely:
//
//   - Magnitudes that differ by almost a whole canonical unit can compare
//     equal (19.6 kg equals 20.4 kg), while magnitudes a hair apart across a
//     rounding boundary compare unequal (19.49 kg does not equal 19.51 kg).
//   - Quantities constructed against different tables (NewInTable) normalize
//     through their own table's factors; comparing across tables is only
//     meaningful when the tables share a canonical unit, and equality chains
//     across such quantities are not guaranteed to be transitive.
//
// Comparisons deliberately never fall back to comparing unrounded values;
// that would change observable behavior.
//
// # Concurrency
//
// Quantity is a plain immutable value: all operations are pure, synchronous
// and safe for concurrent use.
package quantity
