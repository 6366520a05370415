package animation

import (
	"errors"
	"fmt"
	"github.com/willbeason/growing-tree/pkg/geometry"
	"github.com/willbeason/growing-tree/pkg/growth"
	"github.com/willbeason/growing-tree/pkg/palette"
	"github.com/willbeason/growing-tree/pkg/stroke"
	"math"
	"time"
)

var ErrInvalidConfig = errors.New("invalid animation config")

// Range is the integer-valued random range Min + floor(Span*U).
type Range struct {
	Min, Span int
}

// Shape selects how trees are built.
type Shape int

const (
	// ShapeRandom grows trees with random angles and one or two children per
	// branch.
	ShapeRandom Shape = iota

	// ShapeSymmetric grows full binary trees with fixed angles.
	ShapeSymmetric
)

// MaxSymmetricDepth bounds symmetric trees, which double in size every level.
const MaxSymmetricDepth = 16

// Variant is a preset drawing style.
type Variant string

const (
	// VariantClassic draws thin constant strokes, restarts quickly and lets a
	// few trees pile up before clearing.
	VariantClassic Variant = "classic"

	// VariantTaper draws thick round strokes that thin towards the leaves and
	// pauses on each finished tree.
	VariantTaper Variant = "taper"
)

type Config struct {
	// Width and Height are the size of the drawing surface.
	Width, Height float64

	// Depth and Spread shape the first tree; later trees are drawn from
	// RegrowDepth and RegrowSpread.
	Depth  int
	Spread float64

	RegrowDepth  Range
	RegrowSpread Range

	Unit       float64
	Base       geometry.XY
	StartAngle float64

	// RootSpan scatters each root horizontally over [0, RootSpan) when positive.
	RootSpan float64

	Shape Shape

	Palette palette.Palette
	Stroke  stroke.Policy
	Growth  growth.Speed

	TickInterval time.Duration
	ResetDelay   time.Duration

	// KeepTrees is how many finished trees stay on the surface before it is
	// cleared. Zero never clears.
	KeepTrees int
}

// DefaultConfig is a tree rooted at the bottom center of a width by height
// surface, drawn in the given variant.
func DefaultConfig(width, height float64, variant Variant) (Config, error) {
	cfg := Config{
		Width:        width,
		Height:       height,
		Depth:        20,
		Spread:       50,
		RegrowDepth:  Range{Min: 15, Span: 15},
		RegrowSpread: Range{Min: 25, Span: 10},
		Unit:         3,
		Base:         geometry.XY{X: width / 2, Y: height},
		StartAngle:   -95,
		Palette:      palette.MustParse(palette.Default),
		Growth:       growth.DefaultSpeed,
		TickInterval: time.Millisecond,
	}

	switch variant {
	case VariantClassic, "":
		cfg.Stroke = stroke.Constant{Width: 1}
		cfg.ResetDelay = 50 * time.Millisecond
		cfg.KeepTrees = 5
	case VariantTaper:
		cfg.Stroke = stroke.Decaying{Initial: 10, Decay: 1, Min: 1}
		cfg.ResetDelay = time.Second
		cfg.KeepTrees = 1
	default:
		return Config{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, variant)
	}

	return cfg, nil
}

// Validate rejects configs the animation cannot run with. Tree building only
// terminates for a positive depth.
func (c Config) Validate() error {
	switch {
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: surface size must be positive, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.Depth < 1:
		return fmt.Errorf("%w: depth must be a positive integer, got %d", ErrInvalidConfig, c.Depth)
	case !(c.Spread > 0) || math.IsInf(c.Spread, 0):
		return fmt.Errorf("%w: spread angle must be positive, got %v", ErrInvalidConfig, c.Spread)
	case c.RegrowDepth.Min < 1 || c.RegrowDepth.Span < 0:
		return fmt.Errorf("%w: regrow depth range %+v must stay positive", ErrInvalidConfig, c.RegrowDepth)
	case c.RegrowSpread.Min < 1 || c.RegrowSpread.Span < 0:
		return fmt.Errorf("%w: regrow spread range %+v must stay positive", ErrInvalidConfig, c.RegrowSpread)
	case !(c.Unit > 0):
		return fmt.Errorf("%w: branch unit must be positive, got %v", ErrInvalidConfig, c.Unit)
	case c.Shape != ShapeRandom && c.Shape != ShapeSymmetric:
		return fmt.Errorf("%w: unknown shape %d", ErrInvalidConfig, c.Shape)
	case c.Shape == ShapeSymmetric && max(c.Depth, c.RegrowDepth.Min+c.RegrowDepth.Span-1) > MaxSymmetricDepth:
		return fmt.Errorf("%w: symmetric trees are limited to depth %d", ErrInvalidConfig, MaxSymmetricDepth)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: %w", ErrInvalidConfig, palette.ErrEmpty)
	case c.Stroke == nil:
		return fmt.Errorf("%w: no stroke policy", ErrInvalidConfig)
	case !(c.Growth.Base > 0) || c.Growth.Range < 0:
		return fmt.Errorf("%w: growth speed %+v must be positive", ErrInvalidConfig, c.Growth)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	case c.ResetDelay < 0:
		return fmt.Errorf("%w: reset delay must not be negative, got %v", ErrInvalidConfig, c.ResetDelay)
	case c.KeepTrees < 0:
		return fmt.Errorf("%w: keep trees must not be negative, got %d", ErrInvalidConfig, c.KeepTrees)
	}
	return nil
}
