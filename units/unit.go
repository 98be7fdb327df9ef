// Package units defines unit tags and the conversion tables that relate them.
//
// A Table maps (source unit, target unit) pairs to multiplicative factors. It
// is immutable after construction. The process-wide default table is built in
// and holds mass units with kg as the canonical unit; a different table can be
// installed once at startup (see SetDefault) or loaded from YAML (LoadTable).
package units

import "errors"

// Unit is a unit tag. The set of valid units is closed: a Unit is only
// meaningful if it appears in the conversion table it is used against.
type Unit string

// The units of the built-in table. Kilogram is the canonical unit: every
// comparison between quantities normalizes to it.
const (
	Kilogram Unit = "kg"
	Pound    Unit = "lb"
	Gram     Unit = "g"
	Ounce    Unit = "oz"
)

// ErrUnknownUnit is returned when a requested unit is absent from the
// conversion table, either at construction time or as a conversion target.
// This is a caller error, surfaced immediately; there is nothing to retry.
var ErrUnknownUnit = errors.New("unknown unit")

// String returns the unit tag as a plain string.
func (u Unit) String() string {
	return string(u)
}
