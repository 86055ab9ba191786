// Package render draws previews of a crop box over its background.
package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"os"

	"deedles.dev/cropbox"
	"deedles.dev/cropbox/geom"
	"golang.org/x/image/draw"
)

// Style is the set of colors used to draw a preview.
type Style struct {
	// Fill is drawn behind the box when there is no background.
	Fill color.Color

	// Dim is laid over everything outside of the box.
	Dim color.Color

	Border color.Color
	Grid   color.Color
	Handle color.Color

	// BorderWidth is the thickness of the box's outline in pixels.
	BorderWidth int
}

// DefaultStyle returns the colors of the note screen: a
// half-transparent black shade, a blue outline and pins, and gray
// guide lines.
func DefaultStyle() Style {
	return Style{
		Fill:        color.White,
		Dim:         color.NRGBA{A: 0x80},
		Border:      color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff},
		Grid:        color.NRGBA{R: 0x8e, G: 0x8e, B: 0x93, A: 0xff},
		Handle:      color.NRGBA{R: 0x00, G: 0x7a, B: 0xff, A: 0xff},
		BorderWidth: 2,
	}
}

// Render draws a preview of a container of size frame with the crop
// box r in it. If bg is not nil, it is scaled to fill the container.
func Render(frame cropbox.Point, r cropbox.Rect, bg image.Image, style Style) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(frame.X)), int(math.Ceil(frame.Y))))

	if bg != nil {
		draw.CatmullRom.Scale(dst, dst.Bounds(), bg, bg.Bounds(), draw.Src, nil)
	} else {
		fill(dst, dst.Bounds(), style.Fill)
	}

	box := pixels(r.Bounds()).Intersect(dst.Bounds())
	dim(dst, box, style.Dim)

	xs, ys := cropbox.Grid(r)
	for _, x := range xs {
		x := int(math.Round(x))
		fill(dst, image.Rect(x, box.Min.Y, x+1, box.Max.Y), style.Grid)
	}
	for _, y := range ys {
		y := int(math.Round(y))
		fill(dst, image.Rect(box.Min.X, y, box.Max.X, y+1), style.Grid)
	}

	outline(dst, box, style.BorderWidth, style.Border)

	for _, pin := range cropbox.Handles(r) {
		p := pixels(pin)
		draw.DrawMask(dst, p, image.NewUniform(style.Handle), image.Point{}, disc(p), p.Min, draw.Over)
	}

	return dst
}

// pixels rounds r to the pixel grid.
func pixels(r geom.Rect[float64]) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Min.X)),
		int(math.Round(r.Min.Y)),
		int(math.Round(r.Max.X)),
		int(math.Round(r.Max.Y)),
	)
}

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// dim shades everything in dst outside of box.
func dim(dst draw.Image, box image.Rectangle, c color.Color) {
	b := dst.Bounds()
	bands := [...]image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, box.Min.Y),
		image.Rect(b.Min.X, box.Max.Y, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, box.Min.Y, box.Min.X, box.Max.Y),
		image.Rect(box.Max.X, box.Min.Y, b.Max.X, box.Max.Y),
	}
	for _, band := range bands {
		if band.Empty() {
			continue
		}
		fill(dst, band, c)
	}
}

// outline draws a border of width w just inside of r.
func outline(dst draw.Image, r image.Rectangle, w int, c color.Color) {
	if w <= 0 || r.Empty() {
		return
	}
	w = min(w, r.Dx()/2, r.Dy()/2)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), c)
	fill(dst, image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), c)
}

// disc is an alpha mask of the largest circle that fits in a
// rectangle.
type disc image.Rectangle

func (d disc) ColorModel() color.Model { return color.AlphaModel }

func (d disc) Bounds() image.Rectangle { return image.Rectangle(d) }

func (d disc) At(x, y int) color.Color {
	r := image.Rectangle(d)
	rad := float64(min(r.Dx(), r.Dy())) / 2
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
	if dx*dx+dy*dy <= rad*rad {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// Encode writes img to w as a PNG.
func Encode(w io.Writer, img image.Image) error {
	err := png.Encode(w, img)
	if err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteFile writes img to the file at path as a PNG.
func WriteFile(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer func() {
		if cerr := file.Close(); (cerr != nil) && (err == nil) {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()

	return Encode(file, img)
}

// LoadImage decodes the PNG or JPEG image in the file at path.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}
