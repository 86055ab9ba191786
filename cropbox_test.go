package cropbox_test

import (
	"math/rand/v2"
	"testing"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestHitTest(t *testing.T) {
	r := cropbox.RectAt(10, 10, 50, 50)

	tests := []struct {
		name string
		p    cropbox.Point
		want cropbox.Corner
	}{
		{"ExactTopLeft", geom.Pt(10.0, 10), cropbox.CornerTopLeft},
		{"NearTopRight", geom.Pt(55.0, 20), cropbox.CornerTopRight},
		{"OutsideBottomLeft", geom.Pt(0.0, 70), cropbox.CornerBottomLeft},
		{"ExactBottomRight", geom.Pt(60.0, 60), cropbox.CornerBottomRight},
		{"Middle", geom.Pt(35.0, 35), cropbox.CornerNone},
		{"LeftEdgeOnly", geom.Pt(10.0, 35), cropbox.CornerNone},
		{"AtThreshold", geom.Pt(-6.0, -6), cropbox.CornerNone},
		{"JustInsideThreshold", geom.Pt(-5.5, -5.5), cropbox.CornerTopLeft},
		{"Far", geom.Pt(500.0, 500), cropbox.CornerNone},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, cropbox.HitTest(test.p, r, cropbox.DefaultHitDistance))
		})
	}
}

func TestHitTestPriority(t *testing.T) {
	tiny := cropbox.RectAt(0, 0, 4, 4)
	short := cropbox.RectAt(0, 0, 100, 4)
	narrow := cropbox.RectAt(0, 0, 4, 100)

	tests := []struct {
		name string
		p    cropbox.Point
		r    cropbox.Rect
		want cropbox.Corner
	}{
		{"AllFour", geom.Pt(2.0, 2), tiny, cropbox.CornerTopLeft},
		{"ShortRightEdge", geom.Pt(100.0, 2), short, cropbox.CornerTopRight},
		{"ShortLeftEdge", geom.Pt(0.0, 2), short, cropbox.CornerTopLeft},
		{"NarrowBottom", geom.Pt(2.0, 98), narrow, cropbox.CornerBottomLeft},
		{"NarrowTop", geom.Pt(2.0, 2), narrow, cropbox.CornerTopLeft},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, cropbox.HitTest(test.p, test.r, cropbox.DefaultHitDistance))
		})
	}
}

func TestMove(t *testing.T) {
	frame := geom.Pt(200.0, 200)
	start := cropbox.RectAt(10, 10, 50, 50)

	tests := []struct {
		name string
		t    cropbox.Point
		want cropbox.Rect
	}{
		{"Zero", geom.Pt(0.0, 0), start},
		{"Inside", geom.Pt(15.0, -5), cropbox.RectAt(25, 5, 50, 50)},
		{"PastBottomRight", geom.Pt(300.0, 300), cropbox.RectAt(150, 150, 50, 50)},
		{"PastTopLeft", geom.Pt(-300.0, -300), cropbox.RectAt(0, 0, 50, 50)},
		{"OneAxis", geom.Pt(-300.0, 40), cropbox.RectAt(0, 50, 50, 50)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, cropbox.Move(start, frame, test.t))
		})
	}
}

func TestMoveKeepsSizeExactly(t *testing.T) {
	frame := geom.Pt(400.0, 400)
	start := cropbox.Rect{
		Origin: geom.Pt(13.7, 91.3),
		Size:   geom.Pt(57.93426838982877, 43.31295457505729),
	}
	for _, d := range []float64{-0.1, 0.3, 7.77, 123.456, 1e6} {
		r := cropbox.Move(start, frame, geom.Pt(d, d/3))
		require.Equal(t, start.Size, r.Size)
	}
}

func TestResize(t *testing.T) {
	frame := geom.Pt(200.0, 200)
	minSize := geom.Pt(20.0, 20)
	start := cropbox.RectAt(10, 10, 50, 50)

	tests := []struct {
		name   string
		corner cropbox.Corner
		t      cropbox.Point
		want   cropbox.Rect
	}{
		{"TopLeftGrowPastFrame", cropbox.CornerTopLeft, geom.Pt(-1000.0, -1000), cropbox.RectAt(0, 0, 60, 60)},
		{"TopLeftGrow", cropbox.CornerTopLeft, geom.Pt(-5.0, -8), cropbox.RectAt(5, 2, 55, 58)},
		{"TopLeftShrinkPastMin", cropbox.CornerTopLeft, geom.Pt(1000.0, 1000), cropbox.RectAt(40, 40, 20, 20)},
		{"TopRightGrow", cropbox.CornerTopRight, geom.Pt(30.0, -5), cropbox.RectAt(10, 5, 80, 55)},
		{"TopRightPastFrame", cropbox.CornerTopRight, geom.Pt(1000.0, -1000), cropbox.RectAt(10, 0, 190, 60)},
		{"BottomLeftGrow", cropbox.CornerBottomLeft, geom.Pt(-10.0, 10), cropbox.RectAt(0, 10, 60, 60)},
		{"BottomRightShrinkPastMin", cropbox.CornerBottomRight, geom.Pt(-1000.0, -1000), cropbox.RectAt(10, 10, 20, 20)},
		{"BottomRightGrow", cropbox.CornerBottomRight, geom.Pt(40.0, 20), cropbox.RectAt(10, 10, 90, 70)},
		{"BottomRightPastFrame", cropbox.CornerBottomRight, geom.Pt(1000.0, 1000), cropbox.RectAt(10, 10, 190, 190)},
		{"NoneMoves", cropbox.CornerNone, geom.Pt(300.0, 300), cropbox.RectAt(150, 150, 50, 50)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, cropbox.Resize(start, test.corner, frame, test.t, minSize))
		})
	}
}

type dragCase struct {
	frame   cropbox.Point
	minSize cropbox.Point
	start   cropbox.Rect
	t       cropbox.Point
}

func randomDrags(n int) []dragCase {
	r := rand.New(rand.NewPCG(1, 2))
	between := func(lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }

	cases := make([]dragCase, 0, n)
	for range n {
		frame := geom.Pt(between(50, 800), between(50, 800))
		minSize := geom.Pt(between(1, frame.X/4), between(1, frame.Y/4))
		size := geom.Pt(between(minSize.X, frame.X), between(minSize.Y, frame.Y))
		origin := geom.Pt(between(0, frame.X-size.X), between(0, frame.Y-size.Y))
		t := geom.Pt(between(-2*frame.X, 2*frame.X), between(-2*frame.Y, 2*frame.Y))
		cases = append(cases, dragCase{
			frame:   frame,
			minSize: minSize,
			start:   cropbox.Rect{Origin: origin, Size: size},
			t:       t,
		})
	}
	return cases
}

func requireContained(t *testing.T, frame cropbox.Point, r cropbox.Rect) {
	t.Helper()
	require.GreaterOrEqual(t, r.Origin.X, 0.0)
	require.GreaterOrEqual(t, r.Origin.Y, 0.0)
	require.LessOrEqual(t, r.Max().X, frame.X+epsilon)
	require.LessOrEqual(t, r.Max().Y, frame.Y+epsilon)
}

func TestMoveProperties(t *testing.T) {
	for _, c := range randomDrags(2000) {
		r := cropbox.Move(c.start, c.frame, c.t)
		requireContained(t, c.frame, r)
		require.Equal(t, c.start.Size, r.Size)
		require.Equal(t, r, cropbox.Move(c.start, c.frame, c.t))
	}
}

func TestResizeProperties(t *testing.T) {
	for _, c := range randomDrags(2000) {
		for _, corner := range cropbox.Corners {
			r := cropbox.Resize(c.start, corner, c.frame, c.t, c.minSize)
			requireContained(t, c.frame, r)
			require.GreaterOrEqual(t, r.Size.X, c.minSize.X)
			require.GreaterOrEqual(t, r.Size.Y, c.minSize.Y)

			// The far edge of a top or left resize is recomputed from the
			// new origin and size, so it may be off by an ulp.
			anchor := corner.Opposite()
			require.InDelta(t, anchor.Of(c.start).X, anchor.Of(r).X, epsilon, "%v anchor moved", corner)
			require.InDelta(t, anchor.Of(c.start).Y, anchor.Of(r).Y, epsilon, "%v anchor moved", corner)
		}
	}
}

func TestResizeBottomRightKeepsOrigin(t *testing.T) {
	frame := geom.Pt(400.0, 400)
	start := cropbox.RectAt(50, 50, 100, 100)
	for _, d := range []float64{-40, -10, 0, 10, 100, 249} {
		r := cropbox.Resize(start, cropbox.CornerBottomRight, frame, geom.Pt(d, d), geom.Pt(20.0, 20))
		require.Equal(t, start.Origin, r.Origin)
		require.Equal(t, geom.Pt(100+d, 100+d), r.Size)
	}
}

func TestCorner(t *testing.T) {
	for _, c := range cropbox.Corners {
		require.Equal(t, c, c.Opposite().Opposite())
		require.NotEqual(t, c, c.Opposite())

		text, err := c.MarshalText()
		require.Nil(t, err)

		var parsed cropbox.Corner
		require.Nil(t, parsed.UnmarshalText(text))
		require.Equal(t, c, parsed)
	}

	require.Equal(t, "top-left", cropbox.CornerTopLeft.String())
	require.Equal(t, cropbox.CornerNone, cropbox.CornerNone.Opposite())
	require.Equal(t, geom.EdgeNone, cropbox.CornerNone.Edges())
	require.Panics(t, func() { cropbox.CornerNone.Of(cropbox.RectAt(0, 0, 1, 1)) })

	var c cropbox.Corner
	require.NotNil(t, c.UnmarshalText([]byte("middle")))
}

func BenchmarkResize(b *testing.B) {
	frame := geom.Pt(390.0, 844)
	start := cropbox.RectAt(40, 120, 200, 200)
	minSize := cropbox.DefaultMinSize
	for b.Loop() {
		for _, c := range cropbox.Corners {
			cropbox.Resize(start, c, frame, geom.Pt(-37.5, 61.25), minSize)
		}
	}
}
