package cropbox

import (
	"fmt"

	"deedles.dev/cropbox/geom"
)

// Corner identifies a corner of a crop box. A drag that starts on a
// corner resizes the box from that corner while the diagonally
// opposite corner stays put. CornerNone is the result of a hit test
// that found no corner, and means that the drag moves the box.
type Corner uint8

const (
	CornerNone Corner = iota
	CornerTopLeft
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// Corners lists every real corner in hit-test priority order.
var Corners = [...]Corner{
	CornerTopLeft,
	CornerTopRight,
	CornerBottomLeft,
	CornerBottomRight,
}

var cornerNames = [...]string{
	CornerNone:        "none",
	CornerTopLeft:     "top-left",
	CornerTopRight:    "top-right",
	CornerBottomLeft:  "bottom-left",
	CornerBottomRight: "bottom-right",
}

func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return fmt.Sprintf("Corner(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Corner) MarshalText() ([]byte, error) {
	if int(c) >= len(cornerNames) {
		return nil, fmt.Errorf("unknown corner %d", uint8(c))
	}
	return []byte(cornerNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Corner) UnmarshalText(text []byte) error {
	for i, name := range cornerNames {
		if name == string(text) {
			*c = Corner(i)
			return nil
		}
	}
	return fmt.Errorf("unknown corner %q", text)
}

// Edges returns the edges of a rectangle that meet at c.
func (c Corner) Edges() geom.Edges {
	switch c {
	case CornerTopLeft:
		return geom.EdgeTop | geom.EdgeLeft
	case CornerTopRight:
		return geom.EdgeTop | geom.EdgeRight
	case CornerBottomLeft:
		return geom.EdgeBottom | geom.EdgeLeft
	case CornerBottomRight:
		return geom.EdgeBottom | geom.EdgeRight
	default:
		return geom.EdgeNone
	}
}

// Opposite returns the corner diagonally across from c. The opposite
// of CornerNone is CornerNone.
func (c Corner) Opposite() Corner {
	switch c {
	case CornerTopLeft:
		return CornerBottomRight
	case CornerTopRight:
		return CornerBottomLeft
	case CornerBottomLeft:
		return CornerTopRight
	case CornerBottomRight:
		return CornerTopLeft
	default:
		return CornerNone
	}
}

// Of returns the location of c on r. It panics if c is CornerNone.
func (c Corner) Of(r Rect) Point {
	if c == CornerNone {
		panic("cropbox: CornerNone has no location")
	}
	return r.Bounds().Corner(c.Edges())
}

// signs returns the factor that each component of a translation is
// multiplied by when resizing from c. Dragging a top or left corner
// toward the opposite corner has to shrink the box, so those axes are
// inverted.
func (c Corner) signs() Point {
	s := geom.Pt(1.0, 1.0)
	edges := c.Edges()
	if edges.Has(geom.EdgeLeft) {
		s.X = -1
	}
	if edges.Has(geom.EdgeTop) {
		s.Y = -1
	}
	return s
}
