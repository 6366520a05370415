// Package window draws trees into an ebiten window.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/willbeason/growing-tree/pkg/stroke"
	"image"
	"image/color"
	"time"
)

// The vector calls a Canvas draws with; tests replace them to see what is drawn.
var (
	strokeLine = vector.StrokeLine
	fillCircle = vector.DrawFilledCircle
)

// A Canvas is an offscreen image that keeps every stroke between frames.
type Canvas struct {
	img *ebiten.Image

	ink     color.Color
	width   float32
	lineCap stroke.Cap
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:   ebiten.NewImage(width, height),
		ink:   color.White,
		width: 1,
	}
}

func (c *Canvas) SetStrokeColor(clr color.Color) { c.ink = clr }

func (c *Canvas) SetLineWidth(width float64) { c.width = float32(width) }

func (c *Canvas) SetLineCap(lineCap stroke.Cap) { c.lineCap = lineCap }

func (c *Canvas) DrawSegment(x1, y1, x2, y2 float64) {
	fx1, fy1, fx2, fy2 := float32(x1), float32(y1), float32(x2), float32(y2)

	if fx1 != fx2 || fy1 != fy2 {
		strokeLine(c.img, fx1, fy1, fx2, fy2, c.width, c.ink, true)
	}
	if c.lineCap == stroke.CapRound {
		fillCircle(c.img, fx1, fy1, c.width/2, c.ink, true)
		fillCircle(c.img, fx2, fy2, c.width/2, c.ink, true)
	}
}

func (c *Canvas) Clear(width, height float64) {
	r := image.Rect(0, 0, int(width+0.5), int(height+0.5)).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}

// A Clock is advanced once per game update.
type Clock interface {
	Advance(d time.Duration) int
}

// Game presents a Canvas, advancing clock by one update's worth of time each
// tick so the animation runs at wall-clock speed.
type Game struct {
	canvas     *Canvas
	clock      Clock
	background color.Color
}

func NewGame(canvas *Canvas, clock Clock, background color.Color) *Game {
	return &Game{canvas: canvas, clock: clock, background: background}
}

func (g *Game) Update() error {
	g.clock.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	screen.DrawImage(g.canvas.img, nil)
}

func (g *Game) Layout(int, int) (int, int) {
	b := g.canvas.img.Bounds()
	return b.Dx(), b.Dy()
}

var _ ebiten.Game = (*Game)(nil)
