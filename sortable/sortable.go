// Package sortable provides the ordering capability used by sorted collections
// and value types in this module.
package sortable

import (
	"github.com/amp-labs/amp-measure/compare"
)

// Sortable extends Comparable with a strict-less-than relation. Together the
// two methods are enough to derive every other comparison; the helper
// functions below encode those derivations so implementing types and callers
// agree on the exact rules.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// GreaterThan reports whether a is greater than b, defined as b.LessThan(a).
func GreaterThan[T Sortable[T]](a, b T) bool {
	return b.LessThan(a)
}

// LessOrEqual reports whether a is less than or equal to b, defined as
// a.LessThan(b) OR a.Equals(b).
func LessOrEqual[T Sortable[T]](a, b T) bool {
	return a.LessThan(b) || a.Equals(b)
}

// GreaterOrEqual reports whether a is greater than or equal to b, defined as
// GreaterThan(a, b) OR a.Equals(b).
func GreaterOrEqual[T Sortable[T]](a, b T) bool {
	return GreaterThan(a, b) || a.Equals(b)
}

// Min returns the smaller of a and b. When the two are equal (or neither is
// less than the other), a is returned.
func Min[T Sortable[T]](a, b T) T {
	if b.LessThan(a) {
		return b
	}

	return a
}

// Max returns the larger of a and b. When the two are equal (or neither is
// less than the other), a is returned.
func Max[T Sortable[T]](a, b T) T {
	if a.LessThan(b) {
		return b
	}

	return a
}

// IsSorted reports whether the slice is in ascending order according to
// LessThan. Equal adjacent elements are allowed.
func IsSorted[T Sortable[T]](elements []T) bool {
	for i := 1; i < len(elements); i++ {
		if elements[i].LessThan(elements[i-1]) {
			return false
		}
	}

	return true
}
