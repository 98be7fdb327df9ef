package set

import (
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-measure/hashing"
	"github.com/amp-labs/amp-measure/quantity"
	"github.com/amp-labs/amp-measure/units"
)

func TestSet_AddContainsRemove(t *testing.T) {
	t.Parallel()

	s := NewSet[hashing.HashableString](hashing.Sha256)

	require.NoError(t, s.AddAll("kg", "lb", "g"))
	assert.Equal(t, 3, s.Size())

	contains, err := s.Contains("kg")
	require.NoError(t, err)
	assert.True(t, contains)

	contains, err = s.Contains("oz")
	require.NoError(t, err)
	assert.False(t, contains)

	require.NoError(t, s.Remove("kg"))
	assert.Equal(t, 2, s.Size())

	// Removing an absent element is a no-op.
	require.NoError(t, s.Remove("kg"))
	assert.Equal(t, 2, s.Size())

	s.Clear()
	assert.Zero(t, s.Size())
}

func TestSet_DuplicateAddIsNoop(t *testing.T) {
	t.Parallel()

	s := NewSet[hashing.HashableString](hashing.XXH3)

	require.NoError(t, s.Add("kg"))
	require.NoError(t, s.Add("kg"))

	assert.Equal(t, 1, s.Size())
}

func TestSet_EqualQuantitiesCollapse(t *testing.T) {
	t.Parallel()

	s := NewSet[quantity.Quantity](hashing.XXH3)

	// 20 kg and 44 lb normalize to the same rounded canonical value, so the
	// set treats them as one element.
	require.NoError(t, s.Add(quantity.MustNew(20, units.Kilogram)))
	require.NoError(t, s.Add(quantity.MustNew(44, units.Pound)))
	require.NoError(t, s.Add(quantity.MustNew(10, units.Kilogram)))

	assert.Equal(t, 2, s.Size())

	contains, err := s.Contains(quantity.MustNew(20.4, units.Kilogram))
	require.NoError(t, err)
	assert.True(t, contains, "20.4 kg rounds to the same canonical value as 20 kg")
}

func TestSet_UnionIntersection(t *testing.T) {
	t.Parallel()

	a := NewSet[hashing.HashableString](hashing.Sha256)
	require.NoError(t, a.AddAll("kg", "lb"))

	b := NewSet[hashing.HashableString](hashing.Sha256)
	require.NoError(t, b.AddAll("lb", "oz"))

	union, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, 3, union.Size())

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.Equal(t, 1, inter.Size())

	contains, err := inter.Contains("lb")
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestSet_Seq(t *testing.T) {
	t.Parallel()

	s := NewSet[hashing.HashableString](hashing.Sha256)
	require.NoError(t, s.AddAll("kg", "lb"))

	seen := make(map[hashing.HashableString]bool)
	for item := range s.Seq() {
		seen[item] = true
	}

	assert.Len(t, seen, 2)
	assert.True(t, seen["kg"])
	assert.True(t, seen["lb"])
}

// collider hashes a constant, so any two non-equal values collide.
type collider int

func (c collider) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte("constant"))

	return err
}

func (c collider) Equals(other collider) bool {
	return c == other
}

func TestSet_HashCollision(t *testing.T) {
	t.Parallel()

	s := NewSet[collider](hashing.Sha256)

	require.NoError(t, s.Add(collider(1)))

	err := s.Add(collider(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHashCollision)

	_, err = s.Contains(collider(2))
	assert.ErrorIs(t, err, ErrHashCollision)
}
