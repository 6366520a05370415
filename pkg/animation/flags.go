package animation

import (
	"fmt"
	"github.com/spf13/pflag"
	"github.com/tanema/gween/ease"
	"github.com/willbeason/growing-tree/pkg/palette"
	"github.com/willbeason/growing-tree/pkg/stroke"
	"math/rand"
	"time"
)

// Flags are the command-line knobs shared by every command that animates
// trees. Flags left unset keep the variant's defaults.
type Flags struct {
	fs *pflag.FlagSet

	variant     string
	shape       string
	strokeStyle string
	depth       int
	spread      float64
	unit        float64
	startAngle  float64
	scatterRoot bool
	keepTrees   int
	tick        time.Duration
	resetDelay  time.Duration
	seed        int64
	colors      []string
}

func AddFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	// The variants pick their own clearing and pause, so the help shows both.
	classic, _ := DefaultConfig(1, 1, VariantClassic)
	taper, _ := DefaultConfig(1, 1, VariantTaper)

	fs.StringVar(&f.variant, "variant", string(VariantClassic), "drawing style: classic or taper")
	fs.StringVar(&f.shape, "shape", "random", "tree shape: random or symmetric")
	fs.StringVar(&f.strokeStyle, "stroke", "", "override the variant's stroke: constant, decaying or eased")
	fs.IntVar(&f.depth, "depth", 20, "number of levels in the first tree")
	fs.Float64Var(&f.spread, "spread", 50, "maximum angle in degrees a branch turns from its parent in the first tree")
	fs.Float64Var(&f.unit, "unit", 3, "branch length gained per level above the leaves")
	fs.Float64Var(&f.startAngle, "start-angle", -95, "direction of the root branch in degrees; -90 is straight up")
	fs.BoolVar(&f.scatterRoot, "scatter-root", false, "start each tree at a random point along the bottom edge")
	fs.IntVar(&f.keepTrees, "keep-trees", 0, fmt.Sprintf("finished trees kept on screen before clearing, 0 never clears (default %d for %s, %d for %s)",
		classic.KeepTrees, VariantClassic, taper.KeepTrees, VariantTaper))
	fs.DurationVar(&f.tick, "tick", time.Millisecond, "time between growth steps")
	fs.DurationVar(&f.resetDelay, "reset-delay", 0, fmt.Sprintf("pause between a finished tree and the next (default %v for %s, %v for %s)",
		classic.ResetDelay, VariantClassic, taper.ResetDelay, VariantTaper))
	fs.Int64Var(&f.seed, "seed", 0, "random seed; 0 seeds from the clock")
	fs.StringSliceVar(&f.colors, "palette", palette.Default, "stroke colors as #rrggbb")

	return f
}

// Config builds the animation config for a width by height surface.
func (f *Flags) Config(width, height float64) (Config, error) {
	cfg, err := DefaultConfig(width, height, Variant(f.variant))
	if err != nil {
		return Config{}, err
	}

	switch f.shape {
	case "random":
		cfg.Shape = ShapeRandom
	case "symmetric":
		cfg.Shape = ShapeSymmetric
		cfg.Depth = min(cfg.Depth, MaxSymmetricDepth)
		cfg.RegrowDepth = Range{Min: 8, Span: MaxSymmetricDepth - 8}
	default:
		return Config{}, fmt.Errorf("%w: unknown shape %q", ErrInvalidConfig, f.shape)
	}

	switch f.strokeStyle {
	case "":
	case "constant":
		cfg.Stroke = stroke.Constant{Width: 1}
	case "decaying":
		cfg.Stroke = stroke.Decaying{Initial: 10, Decay: 1, Min: 1}
	case "eased":
		cfg.Stroke = stroke.Eased{From: 10, To: 1, Ease: ease.OutQuad}
	default:
		return Config{}, fmt.Errorf("%w: unknown stroke %q", ErrInvalidConfig, f.strokeStyle)
	}

	if f.fs.Changed("depth") {
		cfg.Depth = f.depth
	}
	if f.fs.Changed("spread") {
		cfg.Spread = f.spread
	}
	if f.fs.Changed("unit") {
		cfg.Unit = f.unit
	}
	if f.fs.Changed("start-angle") {
		cfg.StartAngle = f.startAngle
	}
	if f.scatterRoot {
		cfg.RootSpan = width
	}
	if f.fs.Changed("keep-trees") {
		cfg.KeepTrees = f.keepTrees
	}
	if f.fs.Changed("tick") {
		cfg.TickInterval = f.tick
	}
	if f.fs.Changed("reset-delay") {
		cfg.ResetDelay = f.resetDelay
	}
	if f.fs.Changed("palette") {
		cfg.Palette, err = palette.Parse(f.colors)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Rand returns the random source the session should draw from.
func (f *Flags) Rand() *rand.Rand {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
