// Package raster draws trees into an in-memory image.
package raster

import (
	"github.com/willbeason/growing-tree/pkg/stroke"
	"golang.org/x/image/vector"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
)

// capSides is how many sides approximate a round line cap.
const capSides = 16

// A Canvas is an RGBA image that accumulates stroked segments.
type Canvas struct {
	img        *image.RGBA
	background *image.Uniform
	ink        *image.Uniform
	width      float64
	lineCap    stroke.Cap

	ras *vector.Rasterizer
}

func New(width, height int, background color.Color) *Canvas {
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: image.NewUniform(background),
		ink:        image.NewUniform(color.White),
		width:      1,
		ras:        vector.NewRasterizer(width, height),
	}
	c.Clear(float64(width), float64(height))
	return c
}

func (c *Canvas) SetStrokeColor(clr color.Color) {
	c.ink = image.NewUniform(clr)
}

func (c *Canvas) SetLineWidth(width float64) {
	c.width = width
}

func (c *Canvas) SetLineCap(lineCap stroke.Cap) {
	c.lineCap = lineCap
}

// DrawSegment strokes the segment as a filled quad, plus a disc at each end
// for round caps.
func (c *Canvas) DrawSegment(x1, y1, x2, y2 float64) {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())

	half := c.width / 2
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)

	if length > 0 {
		// Normal to the segment, scaled to half the stroke width.
		nx, ny := -dy/length*half, dx/length*half

		c.ras.MoveTo(float32(x1+nx), float32(y1+ny))
		c.ras.LineTo(float32(x2+nx), float32(y2+ny))
		c.ras.LineTo(float32(x2-nx), float32(y2-ny))
		c.ras.LineTo(float32(x1-nx), float32(y1-ny))
		c.ras.ClosePath()
	}

	if c.lineCap == stroke.CapRound {
		c.disc(x1, y1, half)
		if length > 0 {
			c.disc(x2, y2, half)
		}
	}

	c.ras.Draw(c.img, b, c.ink, image.Point{})
}

// disc winds the same way as the stroke quad. The rasterizer sums signed
// coverage, so an opposite winding would cut holes where the two overlap.
func (c *Canvas) disc(cx, cy, r float64) {
	c.ras.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < capSides; i++ {
		theta := 2 * math.Pi * float64(i) / capSides
		c.ras.LineTo(float32(cx+r*math.Cos(theta)), float32(cy-r*math.Sin(theta)))
	}
	c.ras.ClosePath()
}

// Clear paints the background over the rectangle from the origin to (width, height).
func (c *Canvas) Clear(width, height float64) {
	r := image.Rect(0, 0, int(math.Ceil(width)), int(math.Ceil(height))).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, c.background, image.Point{}, draw.Src)
}

func (c *Canvas) Image() image.Image {
	return c.img
}

func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
