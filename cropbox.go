// Package cropbox implements the geometry of a crop box: a rectangle
// laid over a fixed-size container that the user can drag around or
// resize by one of its corners.
//
// All of the functions in this package are pure. They take the
// rectangle as it was when a drag started along with the cumulative
// translation of the pointer since then, and return a new rectangle.
//
// Nothing in this package reports errors. Requests that would push
// the box out of its container or below its minimum size are
// saturated to the nearest valid rectangle.
package cropbox

import "deedles.dev/cropbox/geom"

// Point is a location, size, or translation in container coordinates.
type Point = geom.Point[float64]

const (
	// DefaultHitDistance is the distance from a corner within which a
	// pointer is considered to be on that corner.
	DefaultHitDistance = 16.0

	// DefaultLineHeight is the height of a single line of text in the
	// box's text area.
	DefaultLineHeight = 24.0

	// HandleSize is the diameter of the pins drawn on the corners of a
	// box.
	HandleSize = 16.0

	// TextInset is the padding between the edges of a box and its
	// text area.
	TextInset = 5.0
)

// DefaultMinSize is the smallest a box can be resized to if nothing
// else is configured.
var DefaultMinSize = geom.Pt(100.0, 100.0)

// HitTest returns the corner of r that p is on, or CornerNone if it
// is not within d of any of them in both directions. When p is close
// to more than one corner, as can happen with a very small r, the
// first of top-left, top-right, bottom-left and bottom-right wins.
func HitTest(p Point, r Rect, d float64) Corner {
	end := r.Max()
	left := geom.Abs(p.X-r.Origin.X) < d
	right := geom.Abs(p.X-end.X) < d
	top := geom.Abs(p.Y-r.Origin.Y) < d
	bottom := geom.Abs(p.Y-end.Y) < d

	switch {
	case left && top:
		return CornerTopLeft
	case right && top:
		return CornerTopRight
	case left && bottom:
		return CornerBottomLeft
	case right && bottom:
		return CornerBottomRight
	default:
		return CornerNone
	}
}

// Move returns start translated by t and then clamped independently
// on each axis so that it lies within a container of size frame. The
// size of the rectangle is never changed.
func Move(start Rect, frame, t Point) Rect {
	start.Origin = geom.Pt(
		geom.Clamp(start.Origin.X+t.X, 0, frame.X-start.Size.X),
		geom.Clamp(start.Origin.Y+t.Y, 0, frame.Y-start.Size.Y),
	)
	return start
}

// Resize returns start resized by dragging corner c by t. The corner
// opposite c stays where it is, the size never drops below minSize,
// and the dragged edges never leave the container. If c is CornerNone
// there is nothing to resize from and the result is the same as
// calling Move.
func Resize(start Rect, c Corner, frame, t, minSize Point) Rect {
	if c == CornerNone {
		return Move(start, frame, t)
	}

	s := c.signs()
	edges := c.Edges()
	x, w := resizeAxis(start.Origin.X, start.Size.X, s.X*t.X, minSize.X, frame.X, edges.Has(geom.EdgeLeft))
	y, h := resizeAxis(start.Origin.Y, start.Size.Y, s.Y*t.Y, minSize.Y, frame.Y, edges.Has(geom.EdgeTop))
	return RectAt(x, y, w, h)
}

// resizeAxis resizes the span of length span starting at lo along a
// single axis by d, with positive d growing it. If leading is true,
// the span grows toward zero and its far end stays fixed. Otherwise it
// grows toward limit and lo stays fixed.
//
// The far end of a leading span is recomputed as pos+size, which can
// land one ulp away from lo+span.
func resizeAxis(lo, span, d, floor, limit float64, leading bool) (pos, size float64) {
	size = max(span+d, floor)
	if !leading {
		return lo, min(size, limit-lo)
	}

	pos = max(lo-(size-span), 0)
	return pos, min(size, lo+span)
}
