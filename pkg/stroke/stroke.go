// Package stroke decides how wide tree branches are drawn as a tree grows.
package stroke

import (
	"fmt"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"math"
)

// Cap is how the ends of a stroked segment are finished.
type Cap int

const (
	CapButt Cap = iota
	CapRound
)

func (c Cap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	}
	return fmt.Sprintf("Cap(%d)", int(c))
}

// A Policy picks the line width for each level of a tree.
type Policy interface {
	// Start is the width the root is drawn with.
	Start() float64

	// LevelDone returns the width to use once the tree advances to level, given
	// the width used so far.
	LevelDone(width float64, level, depth int) float64

	Cap() Cap
}

// Constant draws every branch with the same width.
type Constant struct {
	Width float64
}

func (c Constant) Start() float64 { return c.Width }

func (c Constant) LevelDone(float64, int, int) float64 { return c.Width }

func (c Constant) Cap() Cap { return CapButt }

// Decaying starts wide and thins by Decay per finished level, never below Min.
type Decaying struct {
	Initial, Decay, Min float64
}

func (d Decaying) Start() float64 { return d.Initial }

func (d Decaying) LevelDone(width float64, _, _ int) float64 {
	return math.Max(width-d.Decay, d.Min)
}

func (d Decaying) Cap() Cap { return CapRound }

// Eased interpolates from From at the root to To at the leaves along Ease.
type Eased struct {
	From, To float64
	Ease     ease.TweenFunc
}

func (e Eased) Start() float64 { return e.From }

func (e Eased) LevelDone(_ float64, level, depth int) float64 {
	if depth <= 1 {
		return e.To
	}

	fn := e.Ease
	if fn == nil {
		fn = ease.Linear
	}

	tween := gween.New(float32(e.From), float32(e.To), float32(depth-1), fn)
	width, _ := tween.Set(float32(level))

	lo, hi := math.Min(e.From, e.To), math.Max(e.From, e.To)
	return math.Min(math.Max(float64(width), lo), hi)
}

func (e Eased) Cap() Cap { return CapRound }
