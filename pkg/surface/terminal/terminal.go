// Package terminal draws trees as colored character cells.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/willbeason/growing-tree/pkg/stroke"
	"image/color"
	"math"
)

// A Canvas maps a width by height drawing surface onto the cells of a screen.
type Canvas struct {
	screen tcell.Screen

	// scaleX and scaleY convert surface units to cells.
	scaleX, scaleY float64

	style tcell.Style
	glyph rune
}

// New fits a width by height surface to the screen's current size.
func New(screen tcell.Screen, width, height float64) *Canvas {
	cols, rows := screen.Size()
	return &Canvas{
		screen: screen,
		scaleX: float64(cols) / width,
		scaleY: float64(rows) / height,
		style:  tcell.StyleDefault,
		glyph:  Glyph(1),
	}
}

// Glyph is the character used to plot a line of the given width.
func Glyph(width float64) rune {
	switch {
	case width >= 6:
		return '█'
	case width >= 3:
		return '▓'
	case width >= 2:
		return '▒'
	}
	return '•'
}

func (c *Canvas) SetStrokeColor(clr color.Color) {
	c.style = tcell.StyleDefault.Foreground(tcell.FromImageColor(clr))
}

func (c *Canvas) SetLineWidth(width float64) {
	c.glyph = Glyph(width)
}

// SetLineCap does nothing; a cell is as round as it gets.
func (c *Canvas) SetLineCap(stroke.Cap) {}

// DrawSegment plots every cell the segment passes through.
func (c *Canvas) DrawSegment(x1, y1, x2, y2 float64) {
	cx1, cy1 := x1*c.scaleX, y1*c.scaleY
	cx2, cy2 := x2*c.scaleX, y2*c.scaleY

	steps := int(math.Ceil(math.Max(math.Abs(cx2-cx1), math.Abs(cy2-cy1))))
	if steps == 0 {
		c.plot(cx1, cy1)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(cx1+(cx2-cx1)*t, cy1+(cy2-cy1)*t)
	}
}

func (c *Canvas) plot(x, y float64) {
	cols, rows := c.screen.Size()
	col, row := int(math.Floor(x)), int(math.Floor(y))
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	c.screen.SetContent(col, row, c.glyph, nil, c.style)
}

func (c *Canvas) Clear(width, height float64) {
	cols := int(math.Ceil(width * c.scaleX))
	rows := int(math.Ceil(height * c.scaleY))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
}
