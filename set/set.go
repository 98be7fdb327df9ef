// Package set provides hash-based and ordered set collections for elements
// that carry their own equality, hashing, or ordering capability.
package set

import (
	"errors"
	"iter"

	"github.com/amp-labs/amp-measure/collectable"
	"github.com/amp-labs/amp-measure/compare"
	"github.com/amp-labs/amp-measure/hashing"
)

// ErrHashCollision is returned when a hash collision is detected:
// two non-equal objects that produced the same hash value.
var ErrHashCollision = errors.New("hash collision")

// A Set is a collection of unique elements. Uniqueness is determined by the
// HashFunc provided when the Set is created, together with the element type's
// Hashable and Comparable implementations. Elements that compare equal but
// hash differently would silently coexist, so the two capabilities must
// agree; if two non-equal elements hash identically, an error is returned.
type Set[T collectable.Collectable[T]] interface {
	// AddAll adds multiple elements to the set. Returns an error if any element
	// causes a hash collision or if hashing fails.
	AddAll(elements ...T) error

	// Add adds a single element to the set. Returns an error if the element
	// causes a hash collision or if hashing fails. Adding an element that is
	// already present is a no-op.
	Add(element T) error

	// Remove removes an element from the set. Returns an error if hashing fails.
	// Removing an absent element is a no-op.
	Remove(element T) error

	// Clear removes all elements from the set.
	Clear()

	// Contains checks if an element exists in the set. Returns an error if
	// hashing fails or a collision is detected.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in the set as a slice. The order is not guaranteed.
	Entries() []T

	// Seq returns an iterator over the elements. The order is not guaranteed.
	Seq() iter.Seq[T]

	// Union returns a new set containing all elements from both sets.
	Union(other Set[T]) (Set[T], error)

	// Intersection returns a new set containing only elements present in both sets.
	Intersection(other Set[T]) (Set[T], error)
}

type hashSet[T collectable.Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewSet creates a new hash-based Set using the provided hash function to
// determine element uniqueness.
func NewSet[T collectable.Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &hashSet[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

func (s *hashSet[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *hashSet[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	if prev, ok := s.elements[hashVal]; ok {
		if compare.Equals(prev, element) {
			return nil
		}

		return ErrHashCollision
	}

	s.elements[hashVal] = element

	return nil
}

func (s *hashSet[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	if prev, ok := s.elements[hashVal]; ok && compare.Equals(prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

func (s *hashSet[T]) Clear() {
	s.elements = make(map[string]T)
}

func (s *hashSet[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if !ok {
		return false, nil
	}

	if !compare.Equals(prev, element) {
		return true, ErrHashCollision
	}

	return true, nil
}

func (s *hashSet[T]) Size() int {
	return len(s.elements)
}

func (s *hashSet[T]) Entries() []T {
	items := make([]T, 0, len(s.elements))
	for _, item := range s.elements {
		items = append(items, item)
	}

	return items
}

func (s *hashSet[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.elements {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *hashSet[T]) Union(other Set[T]) (Set[T], error) {
	out := NewSet[T](s.hash)

	if err := out.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if err := out.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *hashSet[T]) Intersection(other Set[T]) (Set[T], error) {
	out := NewSet[T](s.hash)

	for item := range s.Seq() {
		contains, err := other.Contains(item)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := out.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
