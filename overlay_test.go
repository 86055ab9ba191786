package cropbox_test

import (
	"testing"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"github.com/stretchr/testify/require"
)

func TestHandles(t *testing.T) {
	r := cropbox.RectAt(10, 20, 100, 200)

	var corners []cropbox.Corner
	for c, pin := range cropbox.Handles(r) {
		corners = append(corners, c)
		require.Equal(t, geom.Pt(cropbox.HandleSize, cropbox.HandleSize), pin.Size())
		require.Equal(t, c.Of(r), pin.Center())

		// A press in the middle of a pin always grabs its corner.
		require.Equal(t, c, cropbox.HitTest(pin.Center(), r, cropbox.DefaultHitDistance))
	}
	require.Equal(t, cropbox.Corners[:], corners)
}

func TestGrid(t *testing.T) {
	xs, ys := cropbox.Grid(cropbox.RectAt(0, 30, 90, 60))
	require.Equal(t, [2]float64{30, 60}, xs)
	require.Equal(t, [2]float64{50, 70}, ys)
}

func TestTextArea(t *testing.T) {
	require.Equal(t, cropbox.RectAt(15, 15, 40, 40), cropbox.TextArea(cropbox.RectAt(10, 10, 50, 50)))
}

func TestLineCount(t *testing.T) {
	require.Equal(t, 0, cropbox.LineCount(0, 24))
	require.Equal(t, 1, cropbox.LineCount(10, 24))
	require.Equal(t, 1, cropbox.LineCount(24, 24))
	require.Equal(t, 2, cropbox.LineCount(25, 0))
	require.Equal(t, 3, cropbox.LineCount(50, 20))
}

func TestCentered(t *testing.T) {
	require.Equal(t, cropbox.RectAt(150, 350, 100, 100), cropbox.Centered(geom.Pt(400.0, 800), geom.Pt(100.0, 100)))
	require.Equal(t, cropbox.RectAt(0, 25, 50, 50), cropbox.Centered(geom.Pt(50.0, 100), geom.Pt(100.0, 50)))
}

func TestFit(t *testing.T) {
	frame := geom.Pt(100.0, 100)
	require.Equal(t, cropbox.RectAt(10, 10, 30, 30), cropbox.Fit(cropbox.RectAt(10, 10, 30, 30), frame))
	require.Equal(t, cropbox.RectAt(70, 0, 30, 30), cropbox.Fit(cropbox.RectAt(90, -5, 30, 30), frame))
	require.Equal(t, cropbox.RectAt(0, 0, 100, 100), cropbox.Fit(cropbox.RectAt(20, 20, 200, 200), frame))
}
