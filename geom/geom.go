// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// works with any numeric type, including the floating-point
// coordinates that pointer input produces.
package geom

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in e2 are set in e.
func (e Edges) Has(e2 Edges) bool {
	return e&e2 == e2
}

// Clamp returns v limited to the range [lo, hi]. If lo is greater
// than hi, hi wins.
func Clamp[T Scalar](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Abs returns the absolute value of v.
func Abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
