package sortable

// Int64 is a sortable wrapper type for the built-in int64 type.
// It is the natural element type for collections of rounded magnitudes.
//
// To convert back to a regular int64, use a type conversion:
//
//	var s sortable.Int64 = 42
//	plain := int64(s)
type Int64 int64

// Compile-time check that Int64 implements Sortable[Int64].
var _ Sortable[Int64] = (*Int64)(nil)

// Equals returns true if this Int64 has the same value as the other Int64.
func (i Int64) Equals(other Int64) bool {
	return int64(i) == int64(other)
}

// LessThan returns true if this Int64 is numerically less than the other Int64.
func (i Int64) LessThan(other Int64) bool {
	return int64(i) < int64(other)
}
