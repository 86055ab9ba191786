package cropbox

import (
	"fmt"

	"deedles.dev/cropbox/geom"
)

// Rect is a crop box, stored as its origin and size in container
// coordinates. Moving a Rect changes only its Origin, so its Size
// survives any number of moves bit for bit.
type Rect struct {
	Origin Point
	Size   Point
}

// RectAt returns the Rect with its origin at (x, y) that is w wide
// and h tall.
func RectAt(x, y, w, h float64) Rect {
	return Rect{Origin: geom.Pt(x, y), Size: geom.Pt(w, h)}
}

// FromBounds returns the Rect that covers b.
func FromBounds(b geom.Rect[float64]) Rect {
	return Rect{Origin: b.Min, Size: b.Size()}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Origin, r.Size)
}

// Max returns the bottom-right corner of r.
func (r Rect) Max() Point {
	return r.Origin.Add(r.Size)
}

// Bounds returns r as a pair of corners for drawing and containment
// checks.
func (r Rect) Bounds() geom.Rect[float64] {
	return geom.RectAt(r.Origin, r.Size)
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}
