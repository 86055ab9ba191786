package cropbox

import (
	"iter"
	"math"

	"deedles.dev/cropbox/geom"
)

// Handles yields the pins drawn on the corners of r, each HandleSize
// across and centered on its corner, in hit-test priority order.
func Handles(r Rect) iter.Seq2[Corner, geom.Rect[float64]] {
	return func(yield func(Corner, geom.Rect[float64]) bool) {
		pin := geom.RectAt(geom.Pt(0.0, 0.0), geom.Pt(HandleSize, HandleSize))
		for _, c := range Corners {
			if !yield(c, pin.CenterAt(c.Of(r))) {
				return
			}
		}
	}
}

// Grid returns the positions of the guide lines that split r into
// thirds. xs holds the two vertical lines and ys the two horizontal
// ones.
func Grid(r Rect) (xs, ys [2]float64) {
	var tiles [3]geom.Rect[float64]
	b := r.Bounds()

	geom.TileEvenHorizontally(tiles[:], b)
	xs[0], xs[1] = tiles[0].Max.X, tiles[1].Max.X

	geom.TileEvenVertically(tiles[:], b)
	ys[0], ys[1] = tiles[0].Max.Y, tiles[1].Max.Y

	return xs, ys
}

// TextArea returns the region of r that text is typed into.
func TextArea(r Rect) Rect {
	return FromBounds(r.Bounds().Inset(TextInset))
}

// LineCount returns the number of lines of height lineHeight that it
// takes to hold text that is textHeight tall. A non-positive
// lineHeight is replaced by DefaultLineHeight.
func LineCount(textHeight, lineHeight float64) int {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	if textHeight <= 0 {
		return 0
	}
	return int(math.Ceil(textHeight / lineHeight))
}

// Centered returns a box of the given size in the middle of a
// container of size frame. If the box is larger than the frame along
// either axis, it is shrunk to fit.
func Centered(frame, size Point) Rect {
	outer := geom.RectAt(Point{}, frame)
	inner := geom.RectAt(Point{}, size.Min(frame))
	return FromBounds(geom.Align(outer, inner, geom.EdgeNone))
}

// Fit returns r shrunk, if necessary, to fit in a container of size
// frame, and then moved the minimum distance needed to lie inside of
// it. It is intended for when the container changes size between
// gestures.
func Fit(r Rect, frame Point) Rect {
	r.Size = r.Size.Min(frame)
	return Move(r, frame, Point{})
}
