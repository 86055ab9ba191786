package geom

import "fmt"

// Rect is an axis-aligned rectangle. It contains the points with
// Min.X <= X < Max.X, Min.Y <= Y < Max.Y. It is well-formed if
// Min.X <= Max.X and Min.Y <= Max.Y.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Pt(x0, y0), Pt(x1, y1)}. The returned
// rectangle is canonicalized.
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Canon()
}

// RectAt returns a rectangle with its top-left corner at origin and
// the given size.
func RectAt[T Scalar](origin, size Point[T]) Rect[T] {
	return Rect[T]{Min: origin, Max: origin.Add(size)}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// Dx returns r's width.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Size returns r's width and height.
func (r Rect[T]) Size() Point[T] {
	return Point[T]{X: r.Dx(), Y: r.Dy()}
}

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Canon returns the canonical version of r, with Min and Max swapped
// as necessary so that it is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Resize returns r with its Min left in place and its Max moved so
// that it has the given size.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min, Max: r.Min.Add(size)}
}

// Inset returns r shrunk by n on every side. If r is too small, the
// result collapses to its center.
func (r Rect[T]) Inset(n T) Rect[T] {
	if r.Dx() < 2*n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

// Center returns the point in the middle of r.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// CenterAt returns r moved so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return r.Add(p.Sub(r.Center()))
}

// Contains reports whether s lies entirely within r. Unlike
// image.Rectangle.In, an empty s is only contained if its corners
// are.
func (r Rect[T]) Contains(s Rect[T]) bool {
	return r.Min.X <= s.Min.X && s.Max.X <= r.Max.X &&
		r.Min.Y <= s.Min.Y && s.Max.Y <= r.Max.Y
}

// Intersect returns the largest rectangle contained by both r and s.
// If they do not overlap, the zero rectangle is returned.
func (r Rect[T]) Intersect(s Rect[T]) Rect[T] {
	r.Min = r.Min.Max(s.Min)
	r.Max = r.Max.Min(s.Max)
	if r.Empty() {
		return Rect[T]{}
	}
	return r
}

// Corner returns the point of r at the corner formed by the given
// edges. Only the first of EdgeTop and EdgeBottom and the first of
// EdgeLeft and EdgeRight are considered, and an edge missing from an
// axis selects that axis's minimum.
func (r Rect[T]) Corner(edges Edges) Point[T] {
	p := r.Min
	if !edges.Has(EdgeLeft) && edges.Has(EdgeRight) {
		p.X = r.Max.X
	}
	if !edges.Has(EdgeTop) && edges.Has(EdgeBottom) {
		p.Y = r.Max.Y
	}
	return p
}
