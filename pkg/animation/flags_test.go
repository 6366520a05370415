package animation

import (
	"errors"
	"github.com/spf13/pflag"
	"github.com/willbeason/growing-tree/pkg/stroke"
	"strings"
	"testing"
	"time"
)

func parseFlags(t *testing.T, args ...string) (*Flags, error) {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := AddFlags(fs)
	return f, fs.Parse(args)
}

func TestFlagsDefaults(t *testing.T) {
	f, err := parseFlags(t)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := f.Config(640, 480)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Depth != 20 || cfg.Spread != 50 || cfg.Unit != 3 || cfg.StartAngle != -95 {
		t.Errorf("got depth %d spread %v unit %v angle %v", cfg.Depth, cfg.Spread, cfg.Unit, cfg.StartAngle)
	}
	if cfg.Base.X != 320 || cfg.Base.Y != 480 {
		t.Errorf("base %v, want bottom center", cfg.Base)
	}
	if cfg.ResetDelay != 50*time.Millisecond || cfg.KeepTrees != 5 {
		t.Errorf("classic reset %v keep %d", cfg.ResetDelay, cfg.KeepTrees)
	}
	if _, ok := cfg.Stroke.(stroke.Constant); !ok {
		t.Errorf("stroke %T, want constant", cfg.Stroke)
	}
	if cfg.RootSpan != 0 {
		t.Errorf("root span %v, want 0", cfg.RootSpan)
	}
}

func TestFlagsOverrides(t *testing.T) {
	f, err := parseFlags(t,
		"--variant=taper",
		"--depth=7",
		"--spread=12.5",
		"--keep-trees=0",
		"--reset-delay=2s",
		"--stroke=eased",
		"--scatter-root",
		"--palette=#000000,#FFFFFF",
	)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := f.Config(640, 480)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Depth != 7 || cfg.Spread != 12.5 {
		t.Errorf("depth %d spread %v, want 7 and 12.5", cfg.Depth, cfg.Spread)
	}
	if cfg.KeepTrees != 0 || cfg.ResetDelay != 2*time.Second {
		t.Errorf("keep %d reset %v, want 0 and 2s", cfg.KeepTrees, cfg.ResetDelay)
	}
	if _, ok := cfg.Stroke.(stroke.Eased); !ok {
		t.Errorf("stroke %T, want eased", cfg.Stroke)
	}
	if cfg.RootSpan != 640 {
		t.Errorf("root span %v, want 640", cfg.RootSpan)
	}
	if len(cfg.Palette) != 2 {
		t.Errorf("palette has %d colors, want 2", len(cfg.Palette))
	}
}

func TestFlagsUsageShowsVariantDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)

	tests := []struct {
		flag string
		want []string
	}{
		{"keep-trees", []string{"5 for classic", "1 for taper"}},
		{"reset-delay", []string{"50ms for classic", "1s for taper"}},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			usage := fs.Lookup(tt.flag).Usage
			for _, w := range tt.want {
				if !strings.Contains(usage, w) {
					t.Errorf("--%s usage %q does not mention %q", tt.flag, usage, w)
				}
			}
		})
	}
}

func TestFlagsSymmetricCapsDepth(t *testing.T) {
	f, err := parseFlags(t, "--shape=symmetric")
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config(640, 480)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Depth > MaxSymmetricDepth {
		t.Errorf("symmetric depth %d exceeds %d", cfg.Depth, MaxSymmetricDepth)
	}
}

func TestFlagsInvalid(t *testing.T) {
	tests := [][]string{
		{"--depth=0"},
		{"--spread=-3"},
		{"--variant=wobbly"},
		{"--shape=bush"},
		{"--stroke=dotted"},
		{"--palette=purple"},
		{"--shape=symmetric", "--depth=24"},
	}
	for _, args := range tests {
		f, err := parseFlags(t, args...)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Config(640, 480); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%v: error = %v, want %v", args, err, ErrInvalidConfig)
		}
	}
}

func TestFlagsSeed(t *testing.T) {
	f, err := parseFlags(t, "--seed=42")
	if err != nil {
		t.Fatal(err)
	}
	a, b := f.Rand(), f.Rand()
	if a.Int63() != b.Int63() {
		t.Error("same seed gave different sequences")
	}
}
