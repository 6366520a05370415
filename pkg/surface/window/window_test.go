package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/willbeason/growing-tree/pkg/animation"
	"github.com/willbeason/growing-tree/pkg/stroke"
	"image/color"
	"testing"
	"time"
)

var _ animation.Surface = (*Canvas)(nil)

type fakeClock struct {
	elapsed time.Duration
}

func (f *fakeClock) Advance(d time.Duration) int {
	f.elapsed += d
	return 0
}

func TestGameAdvancesClock(t *testing.T) {
	clock := &fakeClock{}
	g := NewGame(NewCanvas(64, 32), clock, color.Black)

	for i := 0; i < ebiten.TPS(); i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}

	if d := time.Second - clock.elapsed; d < 0 || d > time.Millisecond {
		t.Errorf("one second of updates advanced the clock %v", clock.elapsed)
	}
}

func TestGameLayout(t *testing.T) {
	g := NewGame(NewCanvas(64, 32), &fakeClock{}, color.Black)
	w, h := g.Layout(1920, 1080)
	if w != 64 || h != 32 {
		t.Errorf("Layout() = %d, %d, want 64, 32", w, h)
	}
}

type drawCall struct {
	kind   string
	x, y   float32
	size   float32
	ink    color.Color
	target *ebiten.Image
}

// recordDraws swaps the canvas's vector calls for ones that record each draw.
func recordDraws(t *testing.T) *[]drawCall {
	t.Helper()

	var draws []drawCall
	oldLine, oldCircle := strokeLine, fillCircle
	strokeLine = func(dst *ebiten.Image, x0, y0, _, _ float32, width float32, clr color.Color, _ bool) {
		draws = append(draws, drawCall{kind: "line", x: x0, y: y0, size: width, ink: clr, target: dst})
	}
	fillCircle = func(dst *ebiten.Image, cx, cy, r float32, clr color.Color, _ bool) {
		draws = append(draws, drawCall{kind: "circle", x: cx, y: cy, size: r, ink: clr, target: dst})
	}
	t.Cleanup(func() { strokeLine, fillCircle = oldLine, oldCircle })
	return &draws
}

func TestDrawSegment(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}

	tests := []struct {
		name    string
		lineCap stroke.Cap
		x2, y2  float64
		want    []string
	}{
		{"butt", stroke.CapButt, 30, 10, []string{"line"}},
		{"round", stroke.CapRound, 30, 10, []string{"line", "circle", "circle"}},
		{"zero-length butt", stroke.CapButt, 10, 10, nil},
		{"zero-length round", stroke.CapRound, 10, 10, []string{"circle", "circle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draws := recordDraws(t)

			c := NewCanvas(64, 32)
			c.SetStrokeColor(red)
			c.SetLineWidth(6)
			c.SetLineCap(tt.lineCap)
			c.DrawSegment(10, 10, tt.x2, tt.y2)

			if len(*draws) != len(tt.want) {
				t.Fatalf("issued %d draws %v, want %v", len(*draws), *draws, tt.want)
			}
			for i, d := range *draws {
				if d.kind != tt.want[i] {
					t.Errorf("draw %d is a %s, want %s", i, d.kind, tt.want[i])
				}
				if d.target != c.img || d.ink != red {
					t.Errorf("draw %d went to %p in %v, want the canvas in red", i, d.target, d.ink)
				}
				wantSize := float32(6)
				if d.kind == "circle" {
					wantSize = 3
				}
				if d.size != wantSize {
					t.Errorf("draw %d size %v, want %v", i, d.size, wantSize)
				}
			}
		})
	}
}

func TestClear(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"whole", 64, 32},
		{"partial", 20.4, 10.6},
		{"oversized", 1000, 1000},
		{"empty", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(64, 32)
			c.Clear(tt.width, tt.height)

			if b := c.img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
				t.Errorf("canvas bounds %v after Clear, want 64x32", b)
			}
		})
	}
}
