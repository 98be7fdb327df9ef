package set

import (
	"iter"
	"sort"

	"github.com/amp-labs/amp-measure/sortable"
)

// OrderedSet is a collection of unique elements kept in ascending order
// according to the element type's LessThan. Uniqueness is determined by
// Equals, checked pairwise at insertion time: an element equal to one already
// in the set is not added.
//
// For element types with conceptual (normalized) equality, such as
// quantities, this means structurally different values that normalize to the
// same rounded representation collapse to whichever was inserted first.
type OrderedSet[K sortable.Sortable[K]] interface {
	// AddAll adds multiple elements to the set, skipping those already present.
	AddAll(elements ...K)

	// Add adds a single element to the set. Adding an element equal to one
	// already present is a no-op.
	Add(element K)

	// Remove removes the element equal to the given one, if present.
	Remove(element K)

	// Clear removes all elements from the set.
	Clear()

	// Contains reports whether an element equal to the given one is present.
	Contains(element K) bool

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in ascending order.
	Entries() []K

	// Seq returns an iterator yielding elements in ascending order.
	Seq() iter.Seq[K]

	// Min returns the smallest element. The second return value is false when
	// the set is empty.
	Min() (K, bool)

	// Max returns the largest element. The second return value is false when
	// the set is empty.
	Max() (K, bool)
}

// orderedSet keeps its elements in a sorted slice. Insertion and removal are
// O(n) from the copy, lookup is O(log n); for the small collections this
// module deals in, the constant factors beat pointer-chasing tree nodes.
type orderedSet[K sortable.Sortable[K]] struct {
	elements []K
}

// NewOrderedSet creates a new empty OrderedSet.
func NewOrderedSet[K sortable.Sortable[K]]() OrderedSet[K] {
	return &orderedSet[K]{}
}

// search returns the index of the first element that is not less than the
// given one, and whether the element at that index equals it.
func (o *orderedSet[K]) search(element K) (int, bool) {
	idx := sort.Search(len(o.elements), func(i int) bool {
		return !o.elements[i].LessThan(element)
	})

	if idx < len(o.elements) && o.elements[idx].Equals(element) {
		return idx, true
	}

	return idx, false
}

func (o *orderedSet[K]) AddAll(elements ...K) {
	for _, element := range elements {
		o.Add(element)
	}
}

func (o *orderedSet[K]) Add(element K) {
	idx, found := o.search(element)
	if found {
		return
	}

	o.elements = append(o.elements, element)
	copy(o.elements[idx+1:], o.elements[idx:])
	o.elements[idx] = element
}

func (o *orderedSet[K]) Remove(element K) {
	idx, found := o.search(element)
	if !found {
		return
	}

	o.elements = append(o.elements[:idx], o.elements[idx+1:]...)
}

func (o *orderedSet[K]) Clear() {
	o.elements = nil
}

func (o *orderedSet[K]) Contains(element K) bool {
	_, found := o.search(element)

	return found
}

func (o *orderedSet[K]) Size() int {
	return len(o.elements)
}

func (o *orderedSet[K]) Entries() []K {
	if len(o.elements) == 0 {
		return nil
	}

	out := make([]K, len(o.elements))
	copy(out, o.elements)

	return out
}

func (o *orderedSet[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, element := range o.elements {
			if !yield(element) {
				return
			}
		}
	}
}

func (o *orderedSet[K]) Min() (K, bool) {
	if len(o.elements) == 0 {
		var zero K

		return zero, false
	}

	return o.elements[0], true
}

func (o *orderedSet[K]) Max() (K, bool) {
	if len(o.elements) == 0 {
		var zero K

		return zero, false
	}

	return o.elements[len(o.elements)-1], true
}
