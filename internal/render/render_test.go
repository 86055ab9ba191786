package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path/filepath"
	"testing"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"deedles.dev/cropbox/internal/render"
	"github.com/stretchr/testify/require"
)

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestRender(t *testing.T) {
	style := render.DefaultStyle()
	img := render.Render(geom.Pt(100.0, 100), cropbox.RectAt(20, 20, 60, 60), nil, style)
	require.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())

	// Inside the box, away from any guide, is untouched.
	require.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, rgba(img, 50, 50))

	// Outside of the box is shaded.
	outside := rgba(img, 5, 50)
	require.Less(t, outside.R, uint8(0xff))
	require.Greater(t, outside.R, uint8(0))
	require.Equal(t, uint8(0xff), outside.A)

	// Guides split the box into thirds.
	require.Equal(t, color.RGBAModel.Convert(style.Grid), rgba(img, 40, 50))
	require.Equal(t, color.RGBAModel.Convert(style.Grid), rgba(img, 50, 60))

	// The outline and pins are on top.
	require.Equal(t, color.RGBAModel.Convert(style.Border), rgba(img, 21, 50))
	require.Equal(t, color.RGBAModel.Convert(style.Handle), rgba(img, 79, 79))
	require.Equal(t, color.RGBAModel.Convert(style.Handle), rgba(img, 15, 15))
}

func TestRenderBackground(t *testing.T) {
	bg := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{R: 0xff, A: 0xff}
	draw.Draw(bg, bg.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	img := render.Render(geom.Pt(60.0, 30), cropbox.RectAt(0, 0, 60, 30), bg, render.DefaultStyle())
	require.Equal(t, image.Rect(0, 0, 60, 30), img.Bounds())
	got := rgba(img, 10, 5)
	require.InDelta(t, red.R, got.R, 1)
	require.InDelta(t, red.G, got.G, 1)
	require.InDelta(t, red.B, got.B, 1)
}

func TestWriteFile(t *testing.T) {
	img := render.Render(geom.Pt(32.0, 32), cropbox.RectAt(4, 4, 24, 24), nil, render.DefaultStyle())

	path := filepath.Join(t.TempDir(), "preview.png")
	require.Nil(t, render.WriteFile(path, img))

	loaded, err := render.LoadImage(path)
	require.Nil(t, err)
	require.Equal(t, img.Bounds(), loaded.Bounds())
	require.Equal(t, rgba(img, 16, 16), rgba(loaded, 16, 16))

	var buf bytes.Buffer
	require.Nil(t, render.Encode(&buf, img))
	_, err = png.DecodeConfig(&buf)
	require.Nil(t, err)
}
