// Package sortable provides the ordering capability used by sorted data
// structures and comparison-driven value types.
//
// # Overview
//
// The package defines the [Sortable] interface and ready-to-use wrapper
// implementations for common primitive types: [Int64], [Float], and [String].
// Sortable extends [github.com/amp-labs/amp-measure/compare.Comparable] with a
// LessThan method, giving both equality and ordering. Sorted collections such
// as [github.com/amp-labs/amp-measure/set.NewOrderedSet] require their element
// type to be Sortable.
//
// The free functions [GreaterThan], [LessOrEqual] and [GreaterOrEqual] derive
// the remaining comparison operators from LessThan and Equals. Types that
// expose their own named comparison methods (such as
// [github.com/amp-labs/amp-measure/quantity.Quantity]) follow the same
// derivation rules, so mixing methods and helpers is always consistent.
//
// # Creating Custom Sortable Types
//
// Implement both methods on a value type:
//
//	type Score struct {
//	    Points int
//	    Name   string
//	}
//
//	func (s Score) Equals(other Score) bool {
//	    return s.Points == other.Points && s.Name == other.Name
//	}
//
//	func (s Score) LessThan(other Score) bool {
//	    if s.Points != other.Points {
//	        return s.Points < other.Points
//	    }
//	    return s.Name < other.Name
//	}
//
// # Equality Caveats
//
// Equals is required to be reflexive and symmetric but not transitive. Types
// whose equality is derived from a rounded normalization (again, see the
// quantity package) can report a≈b and b≈c while a≠c. Collections in this
// module tolerate that: ordered sets deduplicate by Equals at insertion time,
// pairwise.
//
// # Thread Safety
//
// The wrapper types in this package are plain value types and are safe for
// concurrent reads. Collections built on top of them are not synchronized and
// need external locking for concurrent mutation.
package sortable
