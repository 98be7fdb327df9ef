// Package compare defines the equality capability used throughout this module.
package compare

// Comparable is a generic interface for types that can compare themselves for
// equality. The semantics are up to the implementing type: equality may be
// structural, or conceptual (derived from a normalized representation), in
// which case two structurally different values can still compare equal.
//
// Implementations must be reflexive and symmetric. Transitivity is NOT
// required; types whose equality involves per-comparison rounding can
// legitimately violate it.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// NotEquals is the negation of Equals.
func NotEquals[T any](a Comparable[T], b T) bool {
	return !a.Equals(b)
}
