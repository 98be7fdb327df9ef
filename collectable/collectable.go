// Package collectable defines the capability required of elements stored in
// hash-based collections.
package collectable

import (
	"github.com/amp-labs/amp-measure/compare"
	"github.com/amp-labs/amp-measure/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Set or Map, where uniqueness is determined by
// the hash value, and collisions are resolved by comparing
// the objects.
//
// The two capabilities must agree: values that compare equal must
// hash equal. Types with conceptual (normalized) equality satisfy
// this by hashing the normalized representation rather than their
// raw fields.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}
