package geom

import "fmt"

// Point is an X, Y coordinate pair. It is also used to represent
// sizes and translations, in which case X is the width or horizontal
// component and Y is the height or vertical component.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Div returns the vector p/k.
func (p Point[T]) Div(k T) Point[T] {
	return Point[T]{X: p.X / k, Y: p.Y / k}
}

// Min returns the componentwise minimum of p and q.
func (p Point[T]) Min(q Point[T]) Point[T] {
	return Point[T]{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// Max returns the componentwise maximum of p and q.
func (p Point[T]) Max(q Point[T]) Point[T] {
	return Point[T]{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}
